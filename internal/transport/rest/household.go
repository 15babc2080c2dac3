package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
	"github.com/heartmarshall/kitchentory-backend/internal/service/household"
)

const defaultActivityLimit = 50

type householdService interface {
	Create(ctx context.Context, input household.CreateHouseholdInput) (*domain.Household, error)
	Get(ctx context.Context, householdID uuid.UUID) (*domain.Household, error)
	ListForUser(ctx context.Context) ([]domain.Household, error)
	Update(ctx context.Context, input household.UpdateHouseholdInput) (*domain.Household, error)
	Delete(ctx context.Context, householdID uuid.UUID) error
	Activity(ctx context.Context, householdID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error)
	ListMembers(ctx context.Context, householdID uuid.UUID) ([]domain.Member, error)
	AddMember(ctx context.Context, input household.AddMemberInput) (*domain.Membership, error)
	RemoveMember(ctx context.Context, householdID, targetUserID uuid.UUID) error
	UpdateMemberRole(ctx context.Context, input household.UpdateMemberRoleInput) (*domain.Membership, error)
	UpdateMemberPermissions(ctx context.Context, input household.UpdateMemberPermissionsInput) (*domain.Membership, error)
}

// memberEvictor closes live connections of a member who left a household.
type memberEvictor interface {
	DisconnectUser(householdID, userID uuid.UUID)
}

// HouseholdHandler serves household and membership endpoints.
type HouseholdHandler struct {
	svc     householdService
	evictor memberEvictor
	log     *slog.Logger
}

// NewHouseholdHandler creates a HouseholdHandler. evictor may be nil.
func NewHouseholdHandler(svc householdService, evictor memberEvictor, logger *slog.Logger) *HouseholdHandler {
	return &HouseholdHandler{svc: svc, evictor: evictor, log: logger.With("handler", "household")}
}

type createHouseholdRequest struct {
	Name     string       `json:"name"`
	Settings *settingsDTO `json:"settings"`
}

type updateHouseholdRequest struct {
	Name     *string `json:"name"`
	Currency *string `json:"currency"`
	Timezone *string `json:"timezone"`
	Locale   *string `json:"locale"`
}

type addMemberRequest struct {
	UserID uuid.UUID   `json:"userId"`
	Role   domain.Role `json:"role"`
}

type updateRoleRequest struct {
	Role domain.Role `json:"role"`
}

type updatePermissionsRequest struct {
	Grants []domain.Capability     `json:"grants"`
	Flags  *domain.PermissionFlags `json:"permissions"`
}

// Create handles POST /households.
func (h *HouseholdHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createHouseholdRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	input := household.CreateHouseholdInput{Name: req.Name}
	if req.Settings != nil {
		input.Settings = &domain.HouseholdSettings{
			Currency: req.Settings.Currency,
			Timezone: req.Settings.Timezone,
			Locale:   req.Settings.Locale,
		}
	}

	hh, err := h.svc.Create(r.Context(), input)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toHousehold(hh))
}

// List handles GET /households.
func (h *HouseholdHandler) List(w http.ResponseWriter, r *http.Request) {
	households, err := h.svc.ListForUser(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	out := make([]householdResponse, len(households))
	for i := range households {
		out[i] = toHousehold(&households[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /households/{id}.
func (h *HouseholdHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	hh, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHousehold(hh))
}

// Update handles PATCH /households/{id}.
func (h *HouseholdHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req updateHouseholdRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	hh, err := h.svc.Update(r.Context(), household.UpdateHouseholdInput{
		HouseholdID: id,
		Name:        req.Name,
		Currency:    req.Currency,
		Timezone:    req.Timezone,
		Locale:      req.Locale,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHousehold(hh))
}

// Delete handles DELETE /households/{id}.
func (h *HouseholdHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Activity handles GET /households/{id}/activity?limit=&offset=.
func (h *HouseholdHandler) Activity(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", defaultActivityLimit)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	records, err := h.svc.Activity(r.Context(), id, limit, offset)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	out := make([]auditResponse, len(records))
	for i := range records {
		out[i] = toAudit(&records[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// ListMembers handles GET /households/{id}/members.
func (h *HouseholdHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	members, err := h.svc.ListMembers(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	out := make([]memberResponse, len(members))
	for i := range members {
		out[i] = memberResponse{
			membershipResponse: toMembership(&members[i].Membership),
			Email:              members[i].Email,
			Name:               members[i].Name,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// AddMember handles POST /households/{id}/members.
func (h *HouseholdHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req addMemberRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	m, err := h.svc.AddMember(r.Context(), household.AddMemberInput{HouseholdID: id, UserID: req.UserID, Role: req.Role})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMembership(m))
}

// RemoveMember handles DELETE /households/{id}/members/{userID}.
func (h *HouseholdHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	id, userID, err := memberPath(r)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	if err := h.svc.RemoveMember(r.Context(), id, userID); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if h.evictor != nil {
		h.evictor.DisconnectUser(id, userID)
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateMemberRole handles PATCH /households/{id}/members/{userID}/role.
func (h *HouseholdHandler) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	id, userID, err := memberPath(r)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req updateRoleRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	m, err := h.svc.UpdateMemberRole(r.Context(), household.UpdateMemberRoleInput{HouseholdID: id, UserID: userID, Role: req.Role})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMembership(m))
}

// UpdateMemberPermissions handles PATCH /households/{id}/members/{userID}/permissions.
func (h *HouseholdHandler) UpdateMemberPermissions(w http.ResponseWriter, r *http.Request) {
	id, userID, err := memberPath(r)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req updatePermissionsRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	m, err := h.svc.UpdateMemberPermissions(r.Context(), household.UpdateMemberPermissionsInput{
		HouseholdID: id,
		UserID:      userID,
		Grants:      req.Grants,
		Flags:       req.Flags,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMembership(m))
}

func memberPath(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	userID, err := pathUUID(r, "userID")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return id, userID, nil
}
