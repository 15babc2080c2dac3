package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
	"github.com/heartmarshall/kitchentory-backend/pkg/ctxutil"
)

type accessChecker interface {
	Require(ctx context.Context, householdID uuid.UUID, c domain.Capability) (*domain.Membership, error)
}

type socketServer interface {
	Serve(w http.ResponseWriter, r *http.Request, householdID, userID uuid.UUID)
}

// RealtimeHandler authorizes and upgrades household event streams.
type RealtimeHandler struct {
	access accessChecker
	ws     socketServer
	log    *slog.Logger
}

// NewRealtimeHandler creates a RealtimeHandler.
func NewRealtimeHandler(access accessChecker, ws socketServer, logger *slog.Logger) *RealtimeHandler {
	return &RealtimeHandler{access: access, ws: ws, log: logger.With("handler", "realtime")}
}

// Subscribe handles GET /households/{id}/ws.
func (h *RealtimeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeServiceError(h.log, w, r, domain.ErrUnauthorized)
		return
	}
	if _, err := h.access.Require(r.Context(), id, domain.CapRead); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	h.ws.Serve(w, r, id, userID)
}
