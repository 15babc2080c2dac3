package shopping

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
	"github.com/heartmarshall/kitchentory-backend/internal/grocery"
)

// ItemResult is an item mutation together with the list aggregates
// recomputed in the same transaction.
type ItemResult struct {
	Item *domain.ShoppingListItem
	List *domain.ShoppingList
}

// AddItem appends an item to a list (write capability).
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*ItemResult, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	input.Unit = trimPtr(input.Unit)
	input.Notes = trimPtr(input.Notes)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, m, err := s.authorizeList(ctx, input.ListID, domain.CapWrite)
	if err != nil {
		return nil, err
	}

	it := newItem(input, m.UserID)

	var res ItemResult
	err = s.withListLock(ctx, input.ListID, func(txCtx context.Context) error {
		created, err := s.repo.CreateItem(txCtx, it)
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		res.Item = created
		return nil
	}, &res)
	if err != nil {
		return nil, err
	}

	s.auditItem(ctx, m.UserID, res.List.HouseholdID, res.Item.ID, domain.AuditActionCreate,
		map[string]any{"name": map[string]any{"new": res.Item.Name}})
	s.publish(res.List.HouseholdID, domain.EntityTypeShoppingItem, domain.AuditActionCreate, res.Item.ID,
		map[string]any{"list_id": res.List.ID.String()})
	return &res, nil
}

// UpdateItem applies a partial update to an item (write capability).
// Marking an item purchased records the caller as purchaser.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*ItemResult, error) {
	input.Name = trimPtr(input.Name)
	input.Category = trimPtr(input.Category)
	input.Unit = trimPtr(input.Unit)
	input.Notes = trimPtr(input.Notes)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	old, l, m, err := s.authorizeItem(ctx, input.ItemID, domain.CapWrite)
	if err != nil {
		return nil, err
	}

	var res ItemResult
	err = s.withListLock(ctx, l.ID, func(txCtx context.Context) error {
		updated, err := s.repo.UpdateItem(txCtx, input.ItemID, input.params(m.UserID))
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		res.Item = updated
		return nil
	}, &res)
	if err != nil {
		return nil, err
	}

	s.auditItem(ctx, m.UserID, l.HouseholdID, res.Item.ID, domain.AuditActionUpdate, itemChanges(old, res.Item))
	s.publish(l.HouseholdID, domain.EntityTypeShoppingItem, domain.AuditActionUpdate, res.Item.ID,
		map[string]any{"list_id": l.ID.String()})
	return &res, nil
}

// DeleteItem removes an item (delete capability) and returns the list with
// its recomputed aggregates.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) (*domain.ShoppingList, error) {
	if itemID == uuid.Nil {
		return nil, domain.NewValidationError("item_id", "required")
	}
	it, l, m, err := s.authorizeItem(ctx, itemID, domain.CapDelete)
	if err != nil {
		return nil, err
	}

	var res ItemResult
	err = s.withListLock(ctx, l.ID, func(txCtx context.Context) error {
		if err := s.repo.DeleteItem(txCtx, itemID); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		return nil
	}, &res)
	if err != nil {
		return nil, err
	}

	s.auditItem(ctx, m.UserID, l.HouseholdID, itemID, domain.AuditActionDelete,
		map[string]any{"name": map[string]any{"old": it.Name}})
	s.publish(l.HouseholdID, domain.EntityTypeShoppingItem, domain.AuditActionDelete, itemID,
		map[string]any{"list_id": l.ID.String()})
	return res.List, nil
}

// ClearPurchased deletes every purchased item of a list (delete
// capability) and returns how many went, with the recomputed list.
func (s *Service) ClearPurchased(ctx context.Context, listID uuid.UUID) (int64, *domain.ShoppingList, error) {
	if listID == uuid.Nil {
		return 0, nil, domain.NewValidationError("list_id", "required")
	}
	l, m, err := s.authorizeList(ctx, listID, domain.CapDelete)
	if err != nil {
		return 0, nil, err
	}

	var (
		res     ItemResult
		removed int64
	)
	err = s.withListLock(ctx, listID, func(txCtx context.Context) error {
		n, err := s.repo.DeletePurchased(txCtx, listID)
		if err != nil {
			return fmt.Errorf("delete purchased items: %w", err)
		}
		removed = n
		return nil
	}, &res)
	if err != nil {
		return 0, nil, err
	}

	if removed > 0 {
		s.logAudit(ctx, domain.AuditRecord{
			UserID:      m.UserID,
			HouseholdID: &l.HouseholdID,
			EntityType:  domain.EntityTypeShoppingList,
			EntityID:    &l.ID,
			Action:      domain.AuditActionUpdate,
			Changes:     map[string]any{"cleared_purchased": removed},
		})
		s.publish(l.HouseholdID, domain.EntityTypeShoppingList, domain.AuditActionUpdate, l.ID,
			map[string]any{"cleared_purchased": removed})
	}
	return removed, res.List, nil
}

// withListLock runs fn in a transaction holding the list row lock, then
// recomputes the aggregates before commit and stores the list in res.
func (s *Service) withListLock(ctx context.Context, listID uuid.UUID, fn func(ctx context.Context) error, res *ItemResult) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetListForUpdate(txCtx, listID); err != nil {
			return fmt.Errorf("lock list: %w", err)
		}
		if err := fn(txCtx); err != nil {
			return err
		}
		l, err := s.repo.RecomputeAggregates(txCtx, listID)
		if err != nil {
			return fmt.Errorf("recompute aggregates: %w", err)
		}
		res.List = l
		return nil
	})
}

func newItem(input AddItemInput, addedBy uuid.UUID) *domain.ShoppingListItem {
	category := input.Category
	if category == "" {
		category = grocery.Categorize(input.Name)
	}
	qty := 1.0
	if input.Quantity != nil {
		qty = *input.Quantity
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	now := time.Now().UTC()
	return &domain.ShoppingListItem{
		ID:            uuid.New(),
		ListID:        input.ListID,
		Name:          input.Name,
		Category:      category,
		Quantity:      qty,
		Unit:          emptyToNil(input.Unit),
		Status:        domain.ItemStatusPending,
		Priority:      priority,
		EstimatedCost: input.EstimatedCost,
		Notes:         emptyToNil(input.Notes),
		AddedBy:       addedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (s *Service) auditItem(ctx context.Context, userID, householdID, itemID uuid.UUID, action domain.AuditAction, changes map[string]any) {
	s.logAudit(ctx, domain.AuditRecord{
		UserID:      userID,
		HouseholdID: &householdID,
		EntityType:  domain.EntityTypeShoppingItem,
		EntityID:    &itemID,
		Action:      action,
		Changes:     changes,
	})
}

func itemChanges(old, cur *domain.ShoppingListItem) map[string]any {
	changes := map[string]any{}
	if old.Name != cur.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": cur.Name}
	}
	if old.Quantity != cur.Quantity {
		changes["quantity"] = map[string]any{"old": old.Quantity, "new": cur.Quantity}
	}
	if old.Status != cur.Status {
		changes["status"] = map[string]any{"old": old.Status.String(), "new": cur.Status.String()}
	}
	if old.Priority != cur.Priority {
		changes["priority"] = map[string]any{"old": old.Priority.String(), "new": cur.Priority.String()}
	}
	if old.Category != cur.Category {
		changes["category"] = map[string]any{"old": old.Category, "new": cur.Category}
	}
	return changes
}

func emptyToNil(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
