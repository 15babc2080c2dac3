// Package pantry implements household inventory: stock levels, expiry
// alerts and restocking a shopping list from low-stock items.
package pantry

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

// Alert window bounds, in days.
const (
	DefaultAlertDays = 3
	MaxAlertDays     = 90
)

type inventoryRepo interface {
	Create(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	Update(ctx context.Context, id uuid.UUID, p domain.InventoryUpdateParams) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, householdID uuid.UUID, f domain.InventoryFilter) ([]domain.InventoryItem, error)
	AlertCandidates(ctx context.Context, householdID uuid.UUID) ([]domain.InventoryItem, error)
	LowStock(ctx context.Context, householdID uuid.UUID) ([]domain.InventoryItem, error)
}

type listRepo interface {
	GetList(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error)
	GetListForUpdate(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error)
	ListItems(ctx context.Context, listID uuid.UUID) ([]domain.ShoppingListItem, error)
	CreateItem(ctx context.Context, it *domain.ShoppingListItem) (*domain.ShoppingListItem, error)
	RecomputeAggregates(ctx context.Context, listID uuid.UUID) (*domain.ShoppingList, error)
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

// Service provides pantry operations.
type Service struct {
	items  inventoryRepo
	lists  listRepo
	access accessChecker
	audit  auditLogger
	tx     txManager
	events notifier
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new pantry service.
func NewService(
	log *slog.Logger,
	items inventoryRepo,
	lists listRepo,
	access accessChecker,
	audit auditLogger,
	tx txManager,
	events notifier,
) *Service {
	return &Service{
		items:  items,
		lists:  lists,
		access: access,
		audit:  audit,
		tx:     tx,
		events: events,
		log:    log.With("service", "pantry"),
		now:    func() time.Time { return time.Now().UTC() },
	}
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

func (s *Service) auditItem(ctx context.Context, userID uuid.UUID, it *domain.InventoryItem, action domain.AuditAction, changes map[string]any) {
	s.logAudit(ctx, domain.AuditRecord{
		UserID:      userID,
		HouseholdID: &it.HouseholdID,
		EntityType:  domain.EntityTypeInventory,
		EntityID:    &it.ID,
		Action:      action,
		Changes:     changes,
	})
	s.events.Publish(it.HouseholdID, domain.Event{Entity: domain.EntityTypeInventory, Action: action, ID: it.ID})
}
