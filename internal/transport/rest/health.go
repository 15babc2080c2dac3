package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type socketCounter interface {
	ClientCount() int
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	sockets socketCounter
	version string
}

// NewHealthHandler creates a HealthHandler. sockets may be nil.
func NewHealthHandler(db dbPinger, sockets socketCounter, version string) *HealthHandler {
	return &HealthHandler{db: db, sockets: sockets, version: version}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus describes one dependency in /health.
type ComponentStatus struct {
	Status      string `json:"status"`
	Latency     string `json:"latency,omitempty"`
	Connections *int   `json:"connections,omitempty"`
}

// Live handles GET /live. It never touches dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Ready handles GET /ready: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	status, code := "ok", http.StatusOK
	if db.Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now().UTC()})
}

// Health handles GET /health with per-component detail and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]ComponentStatus{"database": h.pingDB(r.Context())}
	if h.sockets != nil {
		n := h.sockets.ClientCount()
		components["realtime"] = ComponentStatus{Status: "ok", Connections: &n}
	}

	status, code := "ok", http.StatusOK
	if components["database"].Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now().UTC(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) ComponentStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return ComponentStatus{Status: "down"}
	}
	return ComponentStatus{Status: "ok", Latency: time.Since(start).String()}
}
