package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "cook-" + suffix + "@example.com",
		Name:         "Cook " + suffix,
		PasswordHash: "$2a$04$seeded",
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedHousehold inserts a household owned by owner together with the owner
// membership, member_count = 1.
func SeedHousehold(t *testing.T, pool *pgxpool.Pool, owner uuid.UUID) domain.Household {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	h := domain.Household{
		ID:          uuid.New(),
		Name:        "Kitchen " + uniqueSuffix(),
		OwnerID:     owner,
		Settings:    domain.DefaultHouseholdSettings(),
		MemberCount: 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO households (id, name, owner_id, currency, timezone, locale, member_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $7)`,
		h.ID, h.Name, owner, h.Settings.Currency, h.Settings.Timezone, h.Settings.Locale, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHousehold: %v", err)
	}

	SeedMembership(t, pool, h.ID, owner, domain.RoleOwner)
	return h
}

// SeedMembership inserts an active membership without touching member_count.
func SeedMembership(t *testing.T, pool *pgxpool.Pool, householdID, userID uuid.UUID, role domain.Role) domain.Membership {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.Membership{
		ID:          uuid.New(),
		HouseholdID: householdID,
		UserID:      userID,
		Role:        role,
		Grants:      []domain.Capability{},
		IsActive:    true,
		JoinedAt:    now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO memberships (id, household_id, user_id, role, grants, is_active, joined_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, '{}', true, $5, $5, $5)`,
		m.ID, householdID, userID, string(role), now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMembership: %v", err)
	}
	return m
}

// SeedShoppingList inserts an empty list.
func SeedShoppingList(t *testing.T, pool *pgxpool.Pool, householdID, createdBy uuid.UUID) domain.ShoppingList {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	l := domain.ShoppingList{
		ID:          uuid.New(),
		HouseholdID: householdID,
		Name:        "List " + uniqueSuffix(),
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO shopping_lists (id, household_id, name, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5)`,
		l.ID, householdID, l.Name, createdBy, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedShoppingList: %v", err)
	}
	return l
}

// SeedInvitation inserts a pending invitation expiring at expiresAt and
// returns it with the stored hash.
func SeedInvitation(t *testing.T, pool *pgxpool.Pool, householdID, invitedBy uuid.UUID, email string, expiresAt time.Time) domain.Invitation {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	inv := domain.Invitation{
		ID:          uuid.New(),
		HouseholdID: householdID,
		Email:       email,
		Role:        domain.RoleMember,
		InvitedBy:   invitedBy,
		TokenHash:   "hash-" + uuid.NewString(),
		Status:      domain.InvitationPending,
		ExpiresAt:   expiresAt.UTC().Truncate(time.Microsecond),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO invitations (id, household_id, email, role, invited_by, token_hash, status, expires_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, 'pending', $7, $8, $8)`,
		inv.ID, householdID, email, string(inv.Role), invitedBy, inv.TokenHash, inv.ExpiresAt, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInvitation: %v", err)
	}
	return inv
}
