package household

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

const membershipColumns = `id, household_id, user_id, role, grants, is_active, invited_by, joined_at, last_active_at, created_at, updated_at`

const (
	sqlGetMembership = `
SELECT ` + membershipColumns + `
FROM memberships
WHERE household_id = $1 AND user_id = $2`

	sqlCreateMembership = `
INSERT INTO memberships (id, household_id, user_id, role, grants, is_active, invited_by, joined_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, true, $6, $7, $7, $7)
RETURNING ` + membershipColumns

	// Reactivation resets the role and drops old overrides.
	sqlReactivateMembership = `
UPDATE memberships
SET is_active = true, role = $3, grants = '{}', invited_by = $4, joined_at = now(), updated_at = now()
WHERE household_id = $1 AND user_id = $2 AND NOT is_active
RETURNING ` + membershipColumns

	// A role change drops overrides granted under the old role.
	sqlUpdateRole = `
UPDATE memberships SET role = $3, grants = '{}', updated_at = now()
WHERE household_id = $1 AND user_id = $2 AND is_active
RETURNING ` + membershipColumns

	sqlUpdateGrants = `
UPDATE memberships SET grants = $3, updated_at = now()
WHERE household_id = $1 AND user_id = $2 AND is_active
RETURNING ` + membershipColumns

	sqlDeactivate = `
UPDATE memberships SET is_active = false, updated_at = now()
WHERE household_id = $1 AND user_id = $2 AND is_active`

	sqlCountActiveOwners = `
SELECT count(*) FROM memberships
WHERE household_id = $1 AND role = 'owner' AND is_active`

	sqlTouch = `
UPDATE memberships SET last_active_at = now()
WHERE household_id = $1 AND user_id = $2 AND is_active`

	sqlListMembers = `
SELECT m.id, m.household_id, m.user_id, m.role, m.grants, m.is_active, m.invited_by,
       m.joined_at, m.last_active_at, m.created_at, m.updated_at, u.email, u.name
FROM memberships m
JOIN users u ON u.id = m.user_id
WHERE m.household_id = $1 AND m.is_active
ORDER BY CASE m.role WHEN 'owner' THEN 0 WHEN 'admin' THEN 1 WHEN 'member' THEN 2 ELSE 3 END,
         m.joined_at, m.id`
)

// ---------------------------------------------------------------------------
// Memberships
// ---------------------------------------------------------------------------

// GetMembership returns the membership of a user in a household, active or
// not.
func (r *Repo) GetMembership(ctx context.Context, householdID, userID uuid.UUID) (*domain.Membership, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlGetMembership, householdID, userID)
	m, err := scanMembership(row)
	if err != nil {
		return nil, postgres.MapError(err, "membership", userID)
	}
	return m, nil
}

// CreateMembership inserts an active membership. A second row for the same
// (household, user) yields domain.ErrAlreadyExists.
func (r *Repo) CreateMembership(ctx context.Context, m *domain.Membership) (*domain.Membership, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlCreateMembership,
		m.ID, m.HouseholdID, m.UserID, string(m.Role), capsToStrings(m.Grants), m.InvitedBy, m.JoinedAt,
	)
	created, err := scanMembership(row)
	if err != nil {
		return nil, postgres.MapError(err, "membership", m.UserID)
	}
	return created, nil
}

// ReactivateMembership turns a soft-deleted membership back on with a new
// role. Returns domain.ErrNotFound when there is no inactive row.
func (r *Repo) ReactivateMembership(ctx context.Context, householdID, userID uuid.UUID, role domain.Role, invitedBy *uuid.UUID) (*domain.Membership, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlReactivateMembership,
		householdID, userID, string(role), invitedBy,
	)
	m, err := scanMembership(row)
	if err != nil {
		return nil, postgres.MapError(err, "membership", userID)
	}
	return m, nil
}

// UpdateMembershipRole changes the role of an active membership and clears
// its explicit grants.
func (r *Repo) UpdateMembershipRole(ctx context.Context, householdID, userID uuid.UUID, role domain.Role) (*domain.Membership, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlUpdateRole, householdID, userID, string(role))
	m, err := scanMembership(row)
	if err != nil {
		return nil, postgres.MapError(err, "membership", userID)
	}
	return m, nil
}

// UpdateMembershipGrants replaces the explicit capability overrides.
func (r *Repo) UpdateMembershipGrants(ctx context.Context, householdID, userID uuid.UUID, grants []domain.Capability) (*domain.Membership, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlUpdateGrants, householdID, userID, capsToStrings(grants))
	m, err := scanMembership(row)
	if err != nil {
		return nil, postgres.MapError(err, "membership", userID)
	}
	return m, nil
}

// DeactivateMembership soft-deletes an active membership.
func (r *Repo) DeactivateMembership(ctx context.Context, householdID, userID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlDeactivate, householdID, userID)
	if err != nil {
		return postgres.MapError(err, "membership", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("membership %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// CountActiveOwners returns the number of active owner memberships.
func (r *Repo) CountActiveOwners(ctx context.Context, householdID uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlCountActiveOwners, householdID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "household", householdID)
	}
	return n, nil
}

// TouchMembership records activity of a member.
func (r *Repo) TouchMembership(ctx context.Context, householdID, userID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlTouch, householdID, userID); err != nil {
		return postgres.MapError(err, "membership", userID)
	}
	return nil
}

// ListMembers returns active members with their user details, owners first.
func (r *Repo) ListMembers(ctx context.Context, householdID uuid.UUID) ([]domain.Member, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlListMembers, householdID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	members, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Member, error) {
		var (
			mem    domain.Member
			role   string
			grants []string
		)
		err := row.Scan(&mem.ID, &mem.HouseholdID, &mem.UserID, &role, &grants, &mem.IsActive, &mem.InvitedBy,
			&mem.JoinedAt, &mem.LastActiveAt, &mem.CreatedAt, &mem.UpdatedAt, &mem.Email, &mem.Name)
		if err != nil {
			return domain.Member{}, err
		}
		mem.Role = domain.Role(role)
		mem.Grants = stringsToCaps(grants)
		return mem, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan members: %w", err)
	}
	return members, nil
}

func scanMembership(row pgx.Row) (*domain.Membership, error) {
	var (
		m      domain.Membership
		role   string
		grants []string
	)
	err := row.Scan(&m.ID, &m.HouseholdID, &m.UserID, &role, &grants, &m.IsActive, &m.InvitedBy,
		&m.JoinedAt, &m.LastActiveAt, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.Role = domain.Role(role)
	m.Grants = stringsToCaps(grants)
	return &m, nil
}

func capsToStrings(caps []domain.Capability) []string {
	out := make([]string, len(caps))
	for i, c := range caps {
		out[i] = string(c)
	}
	return out
}

func stringsToCaps(s []string) []domain.Capability {
	out := make([]domain.Capability, len(s))
	for i, v := range s {
		out[i] = domain.Capability(v)
	}
	return out
}
