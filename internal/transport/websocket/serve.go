package websocket

import (
	"log/slog"
	"net/http"
	"time"

	ws "github.com/coder/websocket"
	"github.com/google/uuid"
)

// Upgrader accepts WebSocket connections and attaches them to the hub.
type Upgrader struct {
	hub            *Hub
	originPatterns []string
	log            *slog.Logger
}

// NewUpgrader creates an upgrader. originPatterns follow
// websocket.AcceptOptions.OriginPatterns; empty means same-origin only.
func NewUpgrader(hub *Hub, originPatterns []string, log *slog.Logger) *Upgrader {
	return &Upgrader{hub: hub, originPatterns: originPatterns, log: log.With("component", "ws")}
}

// Serve upgrades the request and blocks until the client disconnects.
// The caller has already authorized userID for householdID.
func (u *Upgrader) Serve(w http.ResponseWriter, r *http.Request, householdID, userID uuid.UUID) {
	// Long-lived stream: lift the server's per-request deadlines.
	rc := http.NewResponseController(w)
	_ = rc.SetReadDeadline(time.Time{})
	_ = rc.SetWriteDeadline(time.Time{})

	conn, err := ws.Accept(w, r, &ws.AcceptOptions{OriginPatterns: u.originPatterns})
	if err != nil {
		u.log.Warn("accept", slog.String("error", err.Error()))
		return
	}
	defer conn.CloseNow()

	u.log.Debug("client connected",
		slog.String("household_id", householdID.String()),
		slog.String("user_id", userID.String()),
	)
	NewClient(u.hub, conn, householdID, userID).Run(r.Context())
	u.log.Debug("client disconnected",
		slog.String("household_id", householdID.String()),
		slog.String("user_id", userID.String()),
	)
}
