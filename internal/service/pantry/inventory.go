package pantry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
	"github.com/heartmarshall/kitchentory-backend/internal/grocery"
)

// AddItem records an item on hand (write capability).
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*domain.InventoryItem, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	input.Unit = trimPtr(input.Unit)
	input.Location = trimPtr(input.Location)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := s.access.Require(ctx, input.HouseholdID, domain.CapWrite)
	if err != nil {
		return nil, err
	}

	if input.Category == "" {
		input.Category = grocery.Categorize(input.Name)
	}
	now := s.now()
	it, err := s.items.Create(ctx, &domain.InventoryItem{
		ID:                uuid.New(),
		HouseholdID:       input.HouseholdID,
		Name:              input.Name,
		Category:          input.Category,
		Quantity:          input.Quantity,
		Unit:              emptyToNil(input.Unit),
		Location:          emptyToNil(input.Location),
		ExpiresAt:         input.ExpiresAt,
		LowStockThreshold: input.LowStockThreshold,
		CreatedBy:         m.UserID,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return nil, fmt.Errorf("create inventory item: %w", err)
	}

	s.auditItem(ctx, m.UserID, it, domain.AuditActionCreate, map[string]any{
		"name":     map[string]any{"new": it.Name},
		"quantity": map[string]any{"new": it.Quantity},
	})
	return it, nil
}

// UpdateItem applies a partial update (write capability).
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.InventoryItem, error) {
	input.Name = trimPtr(input.Name)
	input.Category = trimPtr(input.Category)
	input.Unit = trimPtr(input.Unit)
	input.Location = trimPtr(input.Location)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	old, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	m, err := s.access.Require(ctx, old.HouseholdID, domain.CapWrite)
	if err != nil {
		return nil, err
	}

	it, err := s.items.Update(ctx, input.ItemID, input.params())
	if err != nil {
		return nil, fmt.Errorf("update inventory item: %w", err)
	}

	changes := map[string]any{}
	if old.Quantity != it.Quantity {
		changes["quantity"] = map[string]any{"old": old.Quantity, "new": it.Quantity}
	}
	if old.Name != it.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": it.Name}
	}
	s.auditItem(ctx, m.UserID, it, domain.AuditActionUpdate, changes)
	return it, nil
}

// DeleteItem removes an inventory item (delete capability).
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if itemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	m, err := s.access.Require(ctx, it.HouseholdID, domain.CapDelete)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}

	s.auditItem(ctx, m.UserID, it, domain.AuditActionDelete, map[string]any{"name": map[string]any{"old": it.Name}})
	s.log.InfoContext(ctx, "inventory item deleted",
		slog.String("household_id", it.HouseholdID.String()),
		slog.String("item_id", itemID.String()),
	)
	return nil
}

// ListItems returns the household inventory matching the filter (read
// capability).
func (s *Service) ListItems(ctx context.Context, householdID uuid.UUID, f domain.InventoryFilter) ([]domain.InventoryItem, error) {
	if f.Limit < 0 || f.Offset < 0 {
		return nil, domain.NewValidationError("pagination", "limit and offset must not be negative")
	}
	if _, err := s.access.Require(ctx, householdID, domain.CapRead); err != nil {
		return nil, err
	}
	f.Search = strings.TrimSpace(f.Search)
	items, err := s.items.List(ctx, householdID, f)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return items, nil
}
