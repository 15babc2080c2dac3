package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
	"github.com/heartmarshall/kitchentory-backend/internal/service/pantry"
)

type pantryService interface {
	AddItem(ctx context.Context, input pantry.AddItemInput) (*domain.InventoryItem, error)
	UpdateItem(ctx context.Context, input pantry.UpdateItemInput) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	ListItems(ctx context.Context, householdID uuid.UUID, f domain.InventoryFilter) ([]domain.InventoryItem, error)
	Alerts(ctx context.Context, householdID uuid.UUID, withinDays int) ([]domain.Alert, error)
	AddLowStockToList(ctx context.Context, householdID, listID uuid.UUID) (*pantry.RestockResult, error)
}

// PantryHandler serves inventory endpoints.
type PantryHandler struct {
	svc pantryService
	log *slog.Logger
}

// NewPantryHandler creates a PantryHandler.
func NewPantryHandler(svc pantryService, logger *slog.Logger) *PantryHandler {
	return &PantryHandler{svc: svc, log: logger.With("handler", "pantry")}
}

type addInventoryRequest struct {
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Quantity          float64    `json:"quantity"`
	Unit              *string    `json:"unit"`
	Location          *string    `json:"location"`
	ExpiresAt         *time.Time `json:"expiresAt"`
	LowStockThreshold *float64   `json:"lowStockThreshold"`
}

type updateInventoryRequest struct {
	Name              *string    `json:"name"`
	Category          *string    `json:"category"`
	Quantity          *float64   `json:"quantity"`
	Unit              *string    `json:"unit"`
	Location          *string    `json:"location"`
	ExpiresAt         *time.Time `json:"expiresAt"`
	ClearExpiry       bool       `json:"clearExpiry"`
	LowStockThreshold *float64   `json:"lowStockThreshold"`
	ClearThreshold    bool       `json:"clearThreshold"`
}

type restockRequest struct {
	ListID uuid.UUID `json:"listId"`
}

type restockResponse struct {
	Added   []shoppingItemResponse `json:"added"`
	Skipped []string               `json:"skipped"`
	List    listResponse           `json:"list"`
}

// List handles GET /households/{id}/pantry?category=&location=&search=&limit=&offset=.
func (h *PantryHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
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

	q := r.URL.Query()
	items, err := h.svc.ListItems(r.Context(), id, domain.InventoryFilter{
		Category: q.Get("category"),
		Location: q.Get("location"),
		Search:   q.Get("search"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	out := make([]inventoryItemResponse, len(items))
	for i := range items {
		out[i] = toInventoryItem(&items[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Add handles POST /households/{id}/pantry.
func (h *PantryHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req addInventoryRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	it, err := h.svc.AddItem(r.Context(), pantry.AddItemInput{
		HouseholdID:       id,
		Name:              req.Name,
		Category:          req.Category,
		Quantity:          req.Quantity,
		Unit:              req.Unit,
		Location:          req.Location,
		ExpiresAt:         req.ExpiresAt,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInventoryItem(it))
}

// Update handles PATCH /pantry/{id}.
func (h *PantryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req updateInventoryRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	it, err := h.svc.UpdateItem(r.Context(), pantry.UpdateItemInput{
		ItemID:            id,
		Name:              req.Name,
		Category:          req.Category,
		Quantity:          req.Quantity,
		Unit:              req.Unit,
		Location:          req.Location,
		ExpiresAt:         req.ExpiresAt,
		ClearExpiry:       req.ClearExpiry,
		LowStockThreshold: req.LowStockThreshold,
		ClearThreshold:    req.ClearThreshold,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toInventoryItem(it))
}

// Delete handles DELETE /pantry/{id}.
func (h *PantryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteItem(r.Context(), id); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Alerts handles GET /households/{id}/pantry/alerts?days=.
func (h *PantryHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	days, err := queryInt(r, "days", 0)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	alerts, err := h.svc.Alerts(r.Context(), id, days)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	out := make([]alertResponse, len(alerts))
	for i := range alerts {
		out[i] = alertResponse{
			Kind:     alerts[i].Kind.String(),
			Item:     toInventoryItem(&alerts[i].Item),
			DaysLeft: alerts[i].DaysLeft,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Restock handles POST /households/{id}/pantry/restock: low-stock items are
// added to the given shopping list.
func (h *PantryHandler) Restock(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req restockRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if req.ListID == uuid.Nil {
		writeServiceError(h.log, w, r, domain.NewValidationError("listId", "required"))
		return
	}

	res, err := h.svc.AddLowStockToList(r.Context(), id, req.ListID)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	skipped := res.Skipped
	if skipped == nil {
		skipped = []string{}
	}
	writeJSON(w, http.StatusOK, restockResponse{
		Added:   toShoppingItems(res.Added),
		Skipped: skipped,
		List:    toList(res.List),
	})
}
