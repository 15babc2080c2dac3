// Package websocket fans household change notifications out to live clients.
package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

// Message is the wire form of a domain.Event. Clients refetch the entity.
type Message struct {
	Type        string         `json:"type"`
	HouseholdID uuid.UUID      `json:"household_id"`
	Entity      string         `json:"entity"`
	Action      string         `json:"action"`
	ID          uuid.UUID      `json:"id"`
	Extra       map[string]any `json:"extra,omitempty"`
}

// NewMessage builds the wire message for ev in householdID.
func NewMessage(householdID uuid.UUID, ev domain.Event) Message {
	return Message{
		Type:        ev.Type(),
		HouseholdID: householdID,
		Entity:      string(ev.Entity),
		Action:      string(ev.Action),
		ID:          ev.ID,
		Extra:       ev.Extra,
	}
}

// Hub tracks connected clients per household.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*Client]struct{}
	log     *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]map[*Client]struct{}),
		log:     log.With("component", "ws_hub"),
	}
}

// Register adds a client to its household's room.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	room, ok := h.clients[c.householdID]
	if !ok {
		room = make(map[*Client]struct{})
		h.clients[c.householdID] = room
	}
	room[c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes a client and closes its send channel. Safe to call twice.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.clients[c.householdID]
	if !ok {
		return
	}
	if _, ok := room[c]; !ok {
		return
	}
	delete(room, c)
	close(c.send)
	if len(room) == 0 {
		delete(h.clients, c.householdID)
	}
}

// Publish sends ev to every client of householdID. Never blocks: a client
// whose buffer is full misses the message.
func (h *Hub) Publish(householdID uuid.UUID, ev domain.Event) {
	data, err := json.Marshal(NewMessage(householdID, ev))
	if err != nil {
		h.log.Error("marshal event", slog.String("type", ev.Type()), slog.String("error", err.Error()))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[householdID] {
		select {
		case c.send <- data:
		default:
			h.log.Debug("client buffer full, dropping event",
				slog.String("household_id", householdID.String()),
				slog.String("user_id", c.userID.String()),
				slog.String("type", ev.Type()),
			)
		}
	}
}

// DisconnectUser closes the send channels of userID's clients in householdID,
// which ends their connections. Used when a membership ends.
func (h *Hub) DisconnectUser(householdID, userID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.clients[householdID]
	for c := range room {
		if c.userID == userID {
			delete(room, c)
			close(c.send)
		}
	}
	if room != nil && len(room) == 0 {
		delete(h.clients, householdID)
	}
}

// ClientCount returns the number of connected clients across households.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, room := range h.clients {
		n += len(room)
	}
	return n
}

// HouseholdClientCount returns the number of clients of one household.
func (h *Hub) HouseholdClientCount(householdID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[householdID])
}
