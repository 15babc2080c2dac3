package household

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

type householdRepo interface {
	Create(ctx context.Context, h *domain.Household) (*domain.Household, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Household, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Household, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Household, error)
	Update(ctx context.Context, id uuid.UUID, p domain.HouseholdUpdateParams) (*domain.Household, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RecountMembers(ctx context.Context, id uuid.UUID) (int, error)

	GetMembership(ctx context.Context, householdID, userID uuid.UUID) (*domain.Membership, error)
	CreateMembership(ctx context.Context, m *domain.Membership) (*domain.Membership, error)
	ReactivateMembership(ctx context.Context, householdID, userID uuid.UUID, role domain.Role, invitedBy *uuid.UUID) (*domain.Membership, error)
	UpdateMembershipRole(ctx context.Context, householdID, userID uuid.UUID, role domain.Role) (*domain.Membership, error)
	UpdateMembershipGrants(ctx context.Context, householdID, userID uuid.UUID, grants []domain.Capability) (*domain.Membership, error)
	DeactivateMembership(ctx context.Context, householdID, userID uuid.UUID) error
	CountActiveOwners(ctx context.Context, householdID uuid.UUID) (int, error)
	ListMembers(ctx context.Context, householdID uuid.UUID) ([]domain.Member, error)
}

type listCreator interface {
	CreateList(ctx context.Context, l *domain.ShoppingList) (*domain.ShoppingList, error)
}

type accessChecker interface {
	Require(ctx context.Context, householdID uuid.UUID, c domain.Capability) (*domain.Membership, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListByHousehold(ctx context.Context, householdID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultListName is the shopping list every new household starts with.
const DefaultListName = "Groceries"

// Service provides household and membership operations.
type Service struct {
	households householdRepo
	lists      listCreator
	access     accessChecker
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new household service.
func NewService(
	log *slog.Logger,
	households householdRepo,
	lists listCreator,
	access accessChecker,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		households: households,
		lists:      lists,
		access:     access,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "household"),
	}
}

// logAudit records a committed mutation. Failures are logged, never returned.
func (s *Service) logAudit(ctx context.Context, rec domain.AuditRecord) {
	if err := s.audit.Log(ctx, rec); err != nil {
		s.log.WarnContext(ctx, "audit log failed",
			slog.String("entity_type", rec.EntityType.String()),
			slog.String("action", rec.Action.String()),
			slog.String("error", err.Error()),
		)
	}
}
