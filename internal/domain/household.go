package domain

import (
	"time"

	"github.com/google/uuid"
)

// Household is the tenant every other record hangs off.
type Household struct {
	ID          uuid.UUID
	Name        string
	OwnerID     uuid.UUID
	Settings    HouseholdSettings
	MemberCount int // maintained from active memberships
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HouseholdSettings holds display preferences of a household.
type HouseholdSettings struct {
	Currency string
	Timezone string
	Locale   string
}

// DefaultHouseholdSettings returns settings used when none are given.
func DefaultHouseholdSettings() HouseholdSettings {
	return HouseholdSettings{
		Currency: "USD",
		Timezone: "UTC",
		Locale:   "en-US",
	}
}

// HouseholdUpdateParams holds a partial household update. nil = unchanged.
type HouseholdUpdateParams struct {
	Name     *string
	Currency *string
	Timezone *string
	Locale   *string
}

// IsEmpty reports whether no field is set.
func (p HouseholdUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Currency == nil && p.Timezone == nil && p.Locale == nil
}

// Membership links a user to a household with a role and explicit grants.
// A removed member keeps the record with IsActive = false.
type Membership struct {
	ID           uuid.UUID
	HouseholdID  uuid.UUID
	UserID       uuid.UUID
	Role         Role
	Grants       []Capability
	IsActive     bool
	InvitedBy    *uuid.UUID
	JoinedAt     time.Time
	LastActiveAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Member is a membership joined with the user it belongs to.
type Member struct {
	Membership
	Email string
	Name  string
}
