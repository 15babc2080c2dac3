package shopping

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

// CreateList creates an empty list in a household (write capability).
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.ShoppingList, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = trimPtr(input.Description)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := s.access.Require(ctx, input.HouseholdID, domain.CapWrite)
	if err != nil {
		return nil, err
	}

	if input.Description != nil && *input.Description == "" {
		input.Description = nil
	}

	now := time.Now().UTC()
	l, err := s.repo.CreateList(ctx, &domain.ShoppingList{
		ID:          uuid.New(),
		HouseholdID: input.HouseholdID,
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   m.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}

	s.logAudit(ctx, domain.AuditRecord{
		UserID:      m.UserID,
		HouseholdID: &l.HouseholdID,
		EntityType:  domain.EntityTypeShoppingList,
		EntityID:    &l.ID,
		Action:      domain.AuditActionCreate,
		Changes:     map[string]any{"name": map[string]any{"new": l.Name}},
	})
	s.publish(l.HouseholdID, domain.EntityTypeShoppingList, domain.AuditActionCreate, l.ID, nil)

	s.log.InfoContext(ctx, "shopping list created",
		slog.String("household_id", l.HouseholdID.String()),
		slog.String("list_id", l.ID.String()),
	)
	return l, nil
}

// GetList returns a list with its items (read capability).
func (s *Service) GetList(ctx context.Context, listID uuid.UUID) (*domain.ShoppingListWithItems, error) {
	if listID == uuid.Nil {
		return nil, domain.NewValidationError("list_id", "required")
	}
	l, _, err := s.authorizeList(ctx, listID, domain.CapRead)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return &domain.ShoppingListWithItems{ShoppingList: *l, Items: items}, nil
}

// ListLists returns the lists of a household (read capability). Archived
// lists are left out unless asked for.
func (s *Service) ListLists(ctx context.Context, householdID uuid.UUID, includeArchived bool) ([]domain.ShoppingList, error) {
	if _, err := s.access.Require(ctx, householdID, domain.CapRead); err != nil {
		return nil, err
	}
	lists, err := s.repo.ListLists(ctx, householdID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	return lists, nil
}

// UpdateList renames, describes or archives a list (write capability).
func (s *Service) UpdateList(ctx context.Context, input UpdateListInput) (*domain.ShoppingList, error) {
	input.Name = trimPtr(input.Name)
	input.Description = trimPtr(input.Description)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	old, m, err := s.authorizeList(ctx, input.ListID, domain.CapWrite)
	if err != nil {
		return nil, err
	}

	l, err := s.repo.UpdateList(ctx, input.ListID, input.params())
	if err != nil {
		return nil, fmt.Errorf("update list: %w", err)
	}

	s.logAudit(ctx, domain.AuditRecord{
		UserID:      m.UserID,
		HouseholdID: &l.HouseholdID,
		EntityType:  domain.EntityTypeShoppingList,
		EntityID:    &l.ID,
		Action:      domain.AuditActionUpdate,
		Changes:     listChanges(old, l),
	})
	s.publish(l.HouseholdID, domain.EntityTypeShoppingList, domain.AuditActionUpdate, l.ID, nil)
	return l, nil
}

// DeleteList removes a list and its items (delete capability).
func (s *Service) DeleteList(ctx context.Context, listID uuid.UUID) error {
	if listID == uuid.Nil {
		return domain.NewValidationError("list_id", "required")
	}
	l, m, err := s.authorizeList(ctx, listID, domain.CapDelete)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteList(ctx, listID); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}

	s.logAudit(ctx, domain.AuditRecord{
		UserID:      m.UserID,
		HouseholdID: &l.HouseholdID,
		EntityType:  domain.EntityTypeShoppingList,
		EntityID:    &l.ID,
		Action:      domain.AuditActionDelete,
		Changes:     map[string]any{"name": map[string]any{"old": l.Name}},
	})
	s.publish(l.HouseholdID, domain.EntityTypeShoppingList, domain.AuditActionDelete, l.ID, nil)

	s.log.InfoContext(ctx, "shopping list deleted",
		slog.String("list_id", listID.String()),
		slog.String("user_id", m.UserID.String()),
	)
	return nil
}

func listChanges(old, cur *domain.ShoppingList) map[string]any {
	changes := map[string]any{}
	if old.Name != cur.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": cur.Name}
	}
	if derefStr(old.Description) != derefStr(cur.Description) {
		changes["description"] = map[string]any{"old": derefStr(old.Description), "new": derefStr(cur.Description)}
	}
	if old.IsArchived != cur.IsArchived {
		changes["is_archived"] = map[string]any{"old": old.IsArchived, "new": cur.IsArchived}
	}
	return changes
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
