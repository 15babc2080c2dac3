package invitation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/auth"
	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

// GetByToken returns the invitation behind a token. A pending invitation
// past its expiry is flipped to expired on the way out.
func (s *Service) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	if token == "" {
		return nil, domain.NewValidationError("token", "required")
	}
	inv, err := s.invitations.GetByTokenHash(ctx, auth.HashToken(token))
	if err != nil {
		return nil, err
	}
	if inv.EffectiveStatus(s.now()) == domain.InvitationExpired {
		inv = s.expire(ctx, inv)
	}
	return inv, nil
}

// ListForHousehold returns the invitations of a household (invite
// capability). Status filters on the effective status, so a pending
// invitation past its expiry lists as expired.
func (s *Service) ListForHousehold(ctx context.Context, householdID uuid.UUID, status *domain.InvitationStatus) ([]domain.Invitation, error) {
	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid value")
	}
	if _, err := s.access.Require(ctx, householdID, domain.CapInvite); err != nil {
		return nil, err
	}

	all, err := s.invitations.ListByHousehold(ctx, householdID, nil)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}

	now := s.now()
	out := make([]domain.Invitation, 0, len(all))
	for _, inv := range all {
		inv.Status = inv.EffectiveStatus(now)
		if status == nil || inv.Status == *status {
			out = append(out, inv)
		}
	}
	return out, nil
}

// CleanupExpired flips every pending invitation past its expiry to expired
// and returns how many changed. Callers gate access; the sweep itself is
// not household scoped.
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	n, err := s.invitations.CleanupExpired(ctx, s.now())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 0, err
		}
		return 0, fmt.Errorf("cleanup expired invitations: %w", err)
	}
	s.log.InfoContext(ctx, "expired invitations swept", slog.Int64("count", n))
	return n, nil
}
