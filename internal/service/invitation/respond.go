package invitation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/auth"
	"github.com/heartmarshall/kitchentory-backend/internal/domain"
	"github.com/heartmarshall/kitchentory-backend/pkg/ctxutil"
)

// Accept joins the caller to the invitation's household. The caller's email
// must match the invitation. A removed member is reactivated with the
// invited role. The status flip, membership write and member recount share
// one transaction.
func (s *Service) Accept(ctx context.Context, token string) (*domain.Membership, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if token == "" {
		return nil, domain.NewValidationError("token", "required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get caller: %w", err)
	}

	inv, err := s.invitations.GetByTokenHash(ctx, auth.HashToken(token))
	if err != nil {
		return nil, err
	}
	if err := s.checkRespondable(ctx, inv); err != nil {
		return nil, err
	}
	if domain.NormalizeEmail(user.Email) != inv.Email {
		return nil, domain.ErrForbidden
	}

	var joined *domain.Membership
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.members.GetForUpdate(txCtx, inv.HouseholdID); err != nil {
			return fmt.Errorf("lock household: %w", err)
		}

		existing, err := s.members.GetMembership(txCtx, inv.HouseholdID, userID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get membership: %w", err)
		}
		if existing != nil && existing.IsActive {
			return domain.ErrAlreadyMember
		}

		if _, err := s.invitations.Respond(txCtx, inv.ID, domain.InvitationAccepted, &userID, s.now()); err != nil {
			return err
		}

		if existing != nil {
			joined, err = s.members.ReactivateMembership(txCtx, inv.HouseholdID, userID, inv.Role, &inv.InvitedBy)
		} else {
			joined, err = s.members.CreateMembership(txCtx, &domain.Membership{
				ID:          uuid.New(),
				HouseholdID: inv.HouseholdID,
				UserID:      userID,
				Role:        inv.Role,
				Grants:      []domain.Capability{},
				IsActive:    true,
				InvitedBy:   &inv.InvitedBy,
				JoinedAt:    s.now(),
			})
		}
		if err != nil {
			return fmt.Errorf("join household: %w", err)
		}

		if _, err := s.members.RecountMembers(txCtx, inv.HouseholdID); err != nil {
			return fmt.Errorf("recount members: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.classify(ctx, inv.ID, err)
	}

	s.auditTransition(ctx, userID, inv, domain.InvitationPending, domain.InvitationAccepted)
	s.log.InfoContext(ctx, "invitation accepted",
		slog.String("invitation_id", inv.ID.String()),
		slog.String("household_id", inv.HouseholdID.String()),
		slog.String("user_id", userID.String()),
	)
	return joined, nil
}

// Decline rejects an invitation. Anonymous callers may decline with the
// token alone; an authenticated caller's email must match.
func (s *Service) Decline(ctx context.Context, token string) (*domain.Invitation, error) {
	if token == "" {
		return nil, domain.NewValidationError("token", "required")
	}

	inv, err := s.invitations.GetByTokenHash(ctx, auth.HashToken(token))
	if err != nil {
		return nil, err
	}

	var respondedBy *uuid.UUID
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("get caller: %w", err)
		}
		if domain.NormalizeEmail(user.Email) != inv.Email {
			return nil, domain.ErrForbidden
		}
		respondedBy = &userID
	}

	if err := s.checkRespondable(ctx, inv); err != nil {
		return nil, err
	}

	declined, err := s.invitations.Respond(ctx, inv.ID, domain.InvitationDeclined, respondedBy, s.now())
	if err != nil {
		return nil, s.classify(ctx, inv.ID, err)
	}

	actor := inv.InvitedBy
	if respondedBy != nil {
		actor = *respondedBy
	}
	s.auditTransition(ctx, actor, declined, domain.InvitationPending, domain.InvitationDeclined)
	return declined, nil
}

// Cancel withdraws a pending invitation. The inviter may always cancel
// while still a member; anyone else needs the invite capability.
func (s *Service) Cancel(ctx context.Context, invitationID uuid.UUID) (*domain.Invitation, error) {
	if invitationID == uuid.Nil {
		return nil, domain.NewValidationError("invitation_id", "required")
	}

	inv, err := s.invitations.GetByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}

	caller, err := s.access.Require(ctx, inv.HouseholdID, domain.CapRead)
	if err != nil {
		return nil, err
	}
	if caller.UserID != inv.InvitedBy && !caller.Can(domain.CapInvite) {
		return nil, domain.ErrForbidden
	}

	if err := s.checkRespondable(ctx, inv); err != nil {
		return nil, err
	}

	cancelled, err := s.invitations.Respond(ctx, inv.ID, domain.InvitationCancelled, &caller.UserID, s.now())
	if err != nil {
		return nil, s.classify(ctx, inv.ID, err)
	}

	s.auditTransition(ctx, caller.UserID, cancelled, domain.InvitationPending, domain.InvitationCancelled)
	return cancelled, nil
}

// checkRespondable rejects invitations that are already terminal or past
// their expiry, lazily expiring the latter.
func (s *Service) checkRespondable(ctx context.Context, inv *domain.Invitation) error {
	now := s.now()
	if inv.IsActionable(now) {
		return nil
	}
	switch inv.EffectiveStatus(now) {
	case domain.InvitationExpired:
		s.expire(ctx, inv)
		return domain.ErrInvitationExpired
	default:
		return domain.ErrInvitationNotPending
	}
}
