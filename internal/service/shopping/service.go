// Package shopping implements shopping lists and their items. Every item
// mutation runs under a row lock on its list and recomputes the list
// aggregates before commit.
package shopping

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

type shoppingRepo interface {
	CreateList(ctx context.Context, l *domain.ShoppingList) (*domain.ShoppingList, error)
	GetList(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error)
	GetListForUpdate(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error)
	ListLists(ctx context.Context, householdID uuid.UUID, includeArchived bool) ([]domain.ShoppingList, error)
	UpdateList(ctx context.Context, id uuid.UUID, p domain.ShoppingListUpdateParams) (*domain.ShoppingList, error)
	DeleteList(ctx context.Context, id uuid.UUID) error
	RecomputeAggregates(ctx context.Context, listID uuid.UUID) (*domain.ShoppingList, error)

	CreateItem(ctx context.Context, it *domain.ShoppingListItem) (*domain.ShoppingListItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error)
	ListItems(ctx context.Context, listID uuid.UUID) ([]domain.ShoppingListItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, p domain.ShoppingItemUpdateParams) (*domain.ShoppingListItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	DeletePurchased(ctx context.Context, listID uuid.UUID) (int64, error)
}

type accessChecker interface {
	Require(ctx context.Context, householdID uuid.UUID, c domain.Capability) (*domain.Membership, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	Publish(householdID uuid.UUID, ev domain.Event)
}

// Service provides shopping list operations.
type Service struct {
	repo   shoppingRepo
	access accessChecker
	audit  auditLogger
	tx     txManager
	events notifier
	log    *slog.Logger
}

// NewService creates a new shopping service.
func NewService(
	log *slog.Logger,
	repo shoppingRepo,
	access accessChecker,
	audit auditLogger,
	tx txManager,
	events notifier,
) *Service {
	return &Service{
		repo:   repo,
		access: access,
		audit:  audit,
		tx:     tx,
		events: events,
		log:    log.With("service", "shopping"),
	}
}

// authorizeList loads a list and checks the caller's capability in its
// household. A list in a household the caller does not belong to reads as
// Forbidden, not NotFound.
func (s *Service) authorizeList(ctx context.Context, listID uuid.UUID, c domain.Capability) (*domain.ShoppingList, *domain.Membership, error) {
	l, err := s.repo.GetList(ctx, listID)
	if err != nil {
		return nil, nil, err
	}
	m, err := s.access.Require(ctx, l.HouseholdID, c)
	if err != nil {
		return nil, nil, err
	}
	return l, m, nil
}

// authorizeItem resolves an item to its list and authorizes against the
// list's household.
func (s *Service) authorizeItem(ctx context.Context, itemID uuid.UUID, c domain.Capability) (*domain.ShoppingListItem, *domain.ShoppingList, *domain.Membership, error) {
	it, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, nil, nil, err
	}
	l, m, err := s.authorizeList(ctx, it.ListID, c)
	if err != nil {
		return nil, nil, nil, err
	}
	return it, l, m, nil
}

func (s *Service) logAudit(ctx context.Context, rec domain.AuditRecord) {
	if err := s.audit.Log(ctx, rec); err != nil {
		s.log.WarnContext(ctx, "audit log failed",
			slog.String("entity_type", rec.EntityType.String()),
			slog.String("action", rec.Action.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) publish(householdID uuid.UUID, entity domain.EntityType, action domain.AuditAction, id uuid.UUID, extra map[string]any) {
	s.events.Publish(householdID, domain.Event{Entity: entity, Action: action, ID: id, Extra: extra})
}
