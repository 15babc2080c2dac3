// Package invitation implements the invitation state machine. All
// transitions are compare-and-swap updates on status = 'pending'.
package invitation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/config"
	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

type invitationRepo interface {
	Create(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invitation, error)
	GetByTokenHash(ctx context.Context, hash string) (*domain.Invitation, error)
	GetPending(ctx context.Context, householdID uuid.UUID, email string) (*domain.Invitation, error)
	Respond(ctx context.Context, id uuid.UUID, status domain.InvitationStatus, respondedBy *uuid.UUID, now time.Time) (*domain.Invitation, error)
	Expire(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Invitation, error)
	CleanupExpired(ctx context.Context, now time.Time) (int64, error)
	ListByHousehold(ctx context.Context, householdID uuid.UUID, status *domain.InvitationStatus) ([]domain.Invitation, error)
}

type membershipRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Household, error)
	GetMembership(ctx context.Context, householdID, userID uuid.UUID) (*domain.Membership, error)
	CreateMembership(ctx context.Context, m *domain.Membership) (*domain.Membership, error)
	ReactivateMembership(ctx context.Context, householdID, userID uuid.UUID, role domain.Role, invitedBy *uuid.UUID) (*domain.Membership, error)
	RecountMembers(ctx context.Context, id uuid.UUID) (int, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type accessChecker interface {
	Require(ctx context.Context, householdID uuid.UUID, c domain.Capability) (*domain.Membership, error)
}

type mailer interface {
	SendInvitation(ctx context.Context, to, householdName, acceptURL string, expiresAt time.Time) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides invitation operations.
type Service struct {
	invitations invitationRepo
	members     membershipRepo
	users       userRepo
	access      accessChecker
	mail        mailer
	audit       auditLogger
	tx          txManager
	cfg         config.InvitationConfig
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new invitation service.
func NewService(
	log *slog.Logger,
	invitations invitationRepo,
	members membershipRepo,
	users userRepo,
	access accessChecker,
	mail mailer,
	audit auditLogger,
	tx txManager,
	cfg config.InvitationConfig,
) *Service {
	return &Service{
		invitations: invitations,
		members:     members,
		users:       users,
		access:      access,
		mail:        mail,
		audit:       audit,
		tx:          tx,
		cfg:         cfg,
		log:         log.With("service", "invitation"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateResult is returned by Create. Token is shown once; only its hash
// is stored.
type CreateResult struct {
	Invitation *domain.Invitation
	Token      string
	AcceptURL  string
}

// classify turns a lost compare-and-swap into the error the caller should
// see: ErrInvitationExpired when the invitation timed out (flipping it to
// expired if nobody has yet), ErrInvitationNotPending otherwise.
func (s *Service) classify(ctx context.Context, id uuid.UUID, casErr error) error {
	if !errors.Is(casErr, domain.ErrInvitationNotPending) {
		return casErr
	}
	cur, err := s.invitations.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("reload invitation: %w", err)
	}
	if cur.EffectiveStatus(s.now()) == domain.InvitationExpired {
		s.expire(ctx, cur)
		return domain.ErrInvitationExpired
	}
	return domain.ErrInvitationNotPending
}

// expire lazily flips a timed-out pending invitation. Losing the race to
// another writer is fine.
func (s *Service) expire(ctx context.Context, inv *domain.Invitation) *domain.Invitation {
	if inv.Status != domain.InvitationPending {
		return inv
	}
	expired, err := s.invitations.Expire(ctx, inv.ID, s.now())
	if err != nil {
		if !errors.Is(err, domain.ErrInvitationNotPending) {
			s.log.WarnContext(ctx, "lazy expiry failed",
				slog.String("invitation_id", inv.ID.String()),
				slog.String("error", err.Error()))
		}
		cp := *inv
		cp.Status = domain.InvitationExpired
		return &cp
	}
	return expired
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

func (s *Service) auditTransition(ctx context.Context, userID uuid.UUID, inv *domain.Invitation, from, to domain.InvitationStatus) {
	s.logAudit(ctx, domain.AuditRecord{
		UserID:      userID,
		HouseholdID: &inv.HouseholdID,
		EntityType:  domain.EntityTypeInvitation,
		EntityID:    &inv.ID,
		Action:      domain.AuditActionUpdate,
		Changes: map[string]any{
			"status": map[string]any{"old": from.String(), "new": to.String()},
		},
	})
}
