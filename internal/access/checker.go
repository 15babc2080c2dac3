// Package access resolves the caller's membership in a household and checks
// it against a required capability.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
	"github.com/heartmarshall/kitchentory-backend/pkg/ctxutil"
)

//go:generate moq -out membership_reader_mock_test.go . membershipReader

type membershipReader interface {
	GetMembership(ctx context.Context, householdID, userID uuid.UUID) (*domain.Membership, error)
}

// Checker authorizes household-scoped operations. Every call reads the
// membership fresh, so role changes apply to the next request.
type Checker struct {
	members membershipReader
}

// NewChecker creates a checker backed by the membership store.
func NewChecker(members membershipReader) *Checker {
	return &Checker{members: members}
}

// Require returns the caller's membership when it is active and holds cap.
// It returns ErrUnauthorized without an identity in ctx and ErrForbidden for
// a missing or inactive membership or a missing capability.
func (c *Checker) Require(ctx context.Context, householdID uuid.UUID, cap domain.Capability) (*domain.Membership, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	m, err := c.members.GetMembership(ctx, householdID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}

	if err := domain.Authorize(m, cap); err != nil {
		return nil, err
	}
	return m, nil
}
