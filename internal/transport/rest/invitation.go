package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
	"github.com/heartmarshall/kitchentory-backend/internal/service/invitation"
)

type invitationService interface {
	Create(ctx context.Context, input invitation.CreateInput) (*invitation.CreateResult, error)
	ListForHousehold(ctx context.Context, householdID uuid.UUID, status *domain.InvitationStatus) ([]domain.Invitation, error)
	GetByToken(ctx context.Context, token string) (*domain.Invitation, error)
	Accept(ctx context.Context, token string) (*domain.Membership, error)
	Decline(ctx context.Context, token string) (*domain.Invitation, error)
	Cancel(ctx context.Context, invitationID uuid.UUID) (*domain.Invitation, error)
	CleanupExpired(ctx context.Context) (int64, error)
}

// InvitationHandler serves invitation endpoints.
type InvitationHandler struct {
	svc invitationService
	log *slog.Logger
}

// NewInvitationHandler creates an InvitationHandler.
func NewInvitationHandler(svc invitationService, logger *slog.Logger) *InvitationHandler {
	return &InvitationHandler{svc: svc, log: logger.With("handler", "invitation")}
}

type createInvitationRequest struct {
	Email       string      `json:"email"`
	Role        domain.Role `json:"role"`
	ExpiryHours *int        `json:"expiryHours"`
}

type createInvitationResponse struct {
	Invitation invitationResponse `json:"invitation"`
	Token      string             `json:"token"`
	AcceptURL  string             `json:"acceptUrl,omitempty"`
}

type cleanupResponse struct {
	Expired int64 `json:"expired"`
}

// Create handles POST /households/{id}/invitations. The raw token is
// returned only here.
func (h *InvitationHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req createInvitationRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Create(r.Context(), invitation.CreateInput{
		HouseholdID: id,
		Email:       req.Email,
		Role:        req.Role,
		ExpiryHours: req.ExpiryHours,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createInvitationResponse{
		Invitation: toInvitation(res.Invitation),
		Token:      res.Token,
		AcceptURL:  res.AcceptURL,
	})
}

// List handles GET /households/{id}/invitations?status=.
func (h *InvitationHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	var status *domain.InvitationStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := domain.InvitationStatus(raw)
		status = &st
	}

	invs, err := h.svc.ListForHousehold(r.Context(), id, status)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	out := make([]invitationResponse, len(invs))
	for i := range invs {
		out[i] = toInvitation(&invs[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /invitations/{token}.
func (h *InvitationHandler) Get(w http.ResponseWriter, r *http.Request) {
	inv, err := h.svc.GetByToken(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvitation(inv))
}

// Accept handles POST /invitations/{token}/accept.
func (h *InvitationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Accept(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMembership(m))
}

// Decline handles POST /invitations/{token}/decline.
func (h *InvitationHandler) Decline(w http.ResponseWriter, r *http.Request) {
	inv, err := h.svc.Decline(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvitation(inv))
}

// Cancel handles DELETE /invitations/{id}.
func (h *InvitationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	inv, err := h.svc.Cancel(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvitation(inv))
}

// Cleanup handles POST /admin/invitations/cleanup. Routed behind
// middleware.AdminOnly.
func (h *InvitationHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.CleanupExpired(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	h.log.InfoContext(r.Context(), "expired invitations cleaned up", slog.Int64("count", n))
	writeJSON(w, http.StatusOK, cleanupResponse{Expired: n})
}
