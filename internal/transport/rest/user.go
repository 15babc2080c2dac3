package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
	"github.com/heartmarshall/kitchentory-backend/internal/service/user"
)

type userService interface {
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) (*user.Page, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// UserHandler serves profile and platform-admin user endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

type setRoleRequest struct {
	Role string `json:"role"`
}

type userPageResponse struct {
	Users []userResponse `json:"users"`
	Total int            `json:"total"`
}

// UpdateProfile handles PATCH /auth/me.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{Name: req.Name})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// List handles GET /admin/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	page, err := h.svc.ListUsers(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	resp := userPageResponse{Users: make([]userResponse, 0, len(page.Users)), Total: page.Total}
	for i := range page.Users {
		resp.Users = append(resp.Users, toUser(&page.Users[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /admin/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// SetRole handles PATCH /admin/users/{id}/role.
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req setRoleRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	u, err := h.svc.SetUserRole(r.Context(), id, domain.UserRole(req.Role))
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}
