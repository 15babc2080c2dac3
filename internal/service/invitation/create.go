package invitation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/auth"
	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

// Create invites an email address into a household (invite capability).
// Non-owners may only invite into roles whose capabilities they hold.
// A stale pending invitation for the same address is expired first; a live
// one yields ErrInvitationExists. The email goes out after commit and its
// failure does not fail the call.
func (s *Service) Create(ctx context.Context, input CreateInput) (*CreateResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	if err := input.Validate(s.cfg.MaxExpiryHours); err != nil {
		return nil, err
	}

	caller, err := s.access.Require(ctx, input.HouseholdID, domain.CapInvite)
	if err != nil {
		return nil, err
	}
	if !caller.CanAssignRole(input.Role) {
		return nil, domain.ErrForbidden
	}

	hours := s.cfg.DefaultExpiryHours
	if input.ExpiryHours != nil {
		hours = *input.ExpiryHours
	}

	raw, hash, err := auth.GenerateOpaqueToken()
	if err != nil {
		return nil, fmt.Errorf("generate invitation token: %w", err)
	}

	now := s.now()
	var (
		created       *domain.Invitation
		householdName string
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		h, err := s.members.GetForUpdate(txCtx, input.HouseholdID)
		if err != nil {
			return fmt.Errorf("lock household: %w", err)
		}
		householdName = h.Name

		if err := s.ensureNotMember(txCtx, input.HouseholdID, input.Email); err != nil {
			return err
		}

		existing, err := s.invitations.GetPending(txCtx, input.HouseholdID, input.Email)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return fmt.Errorf("get pending invitation: %w", err)
		case existing.IsExpired(now):
			if _, err := s.invitations.Expire(txCtx, existing.ID, now); err != nil && !errors.Is(err, domain.ErrInvitationNotPending) {
				return fmt.Errorf("expire stale invitation: %w", err)
			}
		default:
			return domain.ErrInvitationExists
		}

		created, err = s.invitations.Create(txCtx, &domain.Invitation{
			ID:          uuid.New(),
			HouseholdID: input.HouseholdID,
			Email:       input.Email,
			Role:        input.Role,
			InvitedBy:   caller.UserID,
			TokenHash:   hash,
			Status:      domain.InvitationPending,
			ExpiresAt:   now.Add(time.Duration(hours) * time.Hour),
			CreatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	acceptURL := s.acceptURL(raw)

	s.logAudit(ctx, domain.AuditRecord{
		UserID:      caller.UserID,
		HouseholdID: &created.HouseholdID,
		EntityType:  domain.EntityTypeInvitation,
		EntityID:    &created.ID,
		Action:      domain.AuditActionCreate,
		Changes: map[string]any{
			"email": map[string]any{"new": created.Email},
			"role":  map[string]any{"new": created.Role.String()},
		},
	})

	if err := s.mail.SendInvitation(ctx, created.Email, householdName, acceptURL, created.ExpiresAt); err != nil {
		s.log.WarnContext(ctx, "invitation email failed",
			slog.String("invitation_id", created.ID.String()),
			slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "invitation created",
		slog.String("household_id", created.HouseholdID.String()),
		slog.String("invitation_id", created.ID.String()),
		slog.String("role", created.Role.String()),
	)

	return &CreateResult{Invitation: created, Token: raw, AcceptURL: acceptURL}, nil
}

// ensureNotMember returns ErrAlreadyMember when a user with email holds an
// active membership in the household.
func (s *Service) ensureNotMember(ctx context.Context, householdID uuid.UUID, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get user by email: %w", err)
	}

	m, err := s.members.GetMembership(ctx, householdID, u.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get membership: %w", err)
	}
	if m.IsActive {
		return domain.ErrAlreadyMember
	}
	return nil
}

func (s *Service) acceptURL(token string) string {
	if s.cfg.AcceptURL == "" {
		return ""
	}
	return s.cfg.AcceptURL + "?token=" + url.QueryEscape(token)
}
