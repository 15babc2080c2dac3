package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default and maximum invitation lifetimes.
const (
	DefaultInvitationExpiry = 72 * time.Hour
	MaxInvitationExpiry     = 30 * 24 * time.Hour
)

// Invitation asks the owner of Email to join a household with Role.
// Only the SHA-256 hash of the token is stored.
type Invitation struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Email       string
	Role        Role
	InvitedBy   uuid.UUID
	TokenHash   string
	Status      InvitationStatus
	ExpiresAt   time.Time
	RespondedAt *time.Time
	RespondedBy *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsExpired reports whether the invitation is past its expiry.
func (i *Invitation) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// IsActionable reports whether the invitation can still be accepted or declined.
func (i *Invitation) IsActionable(now time.Time) bool {
	return i.Status == InvitationPending && !i.IsExpired(now)
}

// EffectiveStatus is the status as a reader should see it: a pending
// invitation past its expiry reads as expired even before it is swept.
func (i *Invitation) EffectiveStatus(now time.Time) InvitationStatus {
	if i.Status == InvitationPending && i.IsExpired(now) {
		return InvitationExpired
	}
	return i.Status
}
