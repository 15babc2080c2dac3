package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
	"github.com/heartmarshall/kitchentory-backend/internal/service/shopping"
)

type shoppingService interface {
	CreateList(ctx context.Context, input shopping.CreateListInput) (*domain.ShoppingList, error)
	GetList(ctx context.Context, listID uuid.UUID) (*domain.ShoppingListWithItems, error)
	ListLists(ctx context.Context, householdID uuid.UUID, includeArchived bool) ([]domain.ShoppingList, error)
	UpdateList(ctx context.Context, input shopping.UpdateListInput) (*domain.ShoppingList, error)
	DeleteList(ctx context.Context, listID uuid.UUID) error
	AddItem(ctx context.Context, input shopping.AddItemInput) (*shopping.ItemResult, error)
	UpdateItem(ctx context.Context, input shopping.UpdateItemInput) (*shopping.ItemResult, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) (*domain.ShoppingList, error)
	ClearPurchased(ctx context.Context, listID uuid.UUID) (int64, *domain.ShoppingList, error)
}

// ShoppingHandler serves shopping list endpoints.
type ShoppingHandler struct {
	svc shoppingService
	log *slog.Logger
}

// NewShoppingHandler creates a ShoppingHandler.
func NewShoppingHandler(svc shoppingService, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{svc: svc, log: logger.With("handler", "shopping")}
}

type createListRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type updateListRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsArchived  *bool   `json:"isArchived"`
}

type addItemRequest struct {
	Name          string              `json:"name"`
	Category      string              `json:"category"`
	Quantity      *float64            `json:"quantity"`
	Unit          *string             `json:"unit"`
	Priority      domain.ItemPriority `json:"priority"`
	EstimatedCost *float64            `json:"estimatedCost"`
	Notes         *string             `json:"notes"`
}

type updateItemRequest struct {
	Name          *string              `json:"name"`
	Category      *string              `json:"category"`
	Quantity      *float64             `json:"quantity"`
	Unit          *string              `json:"unit"`
	Status        *domain.ItemStatus   `json:"status"`
	Priority      *domain.ItemPriority `json:"priority"`
	EstimatedCost *float64             `json:"estimatedCost"`
	ClearCost     bool                 `json:"clearCost"`
	Notes         *string              `json:"notes"`
}

type clearPurchasedResponse struct {
	Removed int64        `json:"removed"`
	List    listResponse `json:"list"`
}

// CreateList handles POST /households/{id}/lists.
func (h *ShoppingHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req createListRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	l, err := h.svc.CreateList(r.Context(), shopping.CreateListInput{HouseholdID: id, Name: req.Name, Description: req.Description})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toList(l))
}

// ListLists handles GET /households/{id}/lists?archived=true.
func (h *ShoppingHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	archived, err := queryBool(r, "archived")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	lists, err := h.svc.ListLists(r.Context(), id, archived)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	out := make([]listResponse, len(lists))
	for i := range lists {
		out[i] = toList(&lists[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// GetList handles GET /lists/{id}.
func (h *ShoppingHandler) GetList(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	l, err := h.svc.GetList(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	resp := toList(&l.ShoppingList)
	resp.Items = toShoppingItems(l.Items)
	writeJSON(w, http.StatusOK, resp)
}

// UpdateList handles PATCH /lists/{id}.
func (h *ShoppingHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req updateListRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	l, err := h.svc.UpdateList(r.Context(), shopping.UpdateListInput{
		ListID:      id,
		Name:        req.Name,
		Description: req.Description,
		IsArchived:  req.IsArchived,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toList(l))
}

// DeleteList handles DELETE /lists/{id}.
func (h *ShoppingHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteList(r.Context(), id); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /lists/{id}/items.
func (h *ShoppingHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req addItemRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	res, err := h.svc.AddItem(r.Context(), shopping.AddItemInput{
		ListID:        id,
		Name:          req.Name,
		Category:      req.Category,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		Priority:      req.Priority,
		EstimatedCost: req.EstimatedCost,
		Notes:         req.Notes,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemMutation(res))
}

// UpdateItem handles PATCH /items/{id}.
func (h *ShoppingHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req updateItemRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	res, err := h.svc.UpdateItem(r.Context(), shopping.UpdateItemInput{
		ItemID:        id,
		Name:          req.Name,
		Category:      req.Category,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		Status:        req.Status,
		Priority:      req.Priority,
		EstimatedCost: req.EstimatedCost,
		ClearCost:     req.ClearCost,
		Notes:         req.Notes,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemMutation(res))
}

// DeleteItem handles DELETE /items/{id} and returns the updated list.
func (h *ShoppingHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	l, err := h.svc.DeleteItem(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toList(l))
}

// ClearPurchased handles POST /lists/{id}/clear-purchased.
func (h *ShoppingHandler) ClearPurchased(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	n, l, err := h.svc.ClearPurchased(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clearPurchasedResponse{Removed: n, List: toList(l)})
}

func toItemMutation(res *shopping.ItemResult) itemMutationResponse {
	return itemMutationResponse{Item: toShoppingItem(res.Item), List: toList(res.List)}
}
