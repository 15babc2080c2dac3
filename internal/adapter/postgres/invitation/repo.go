// Package invitation implements invitation persistence using PostgreSQL.
// Every status change is a conditional UPDATE on status = 'pending', so
// concurrent accept, cancel and expiry have exactly one winner.
package invitation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

// pendingIndex enforces one pending invitation per (household, email).
const pendingIndex = "ux_invitations_pending"

const invitationColumns = `id, household_id, email, role, invited_by, token_hash, status, expires_at, responded_at, responded_by, created_at, updated_at`

const (
	sqlCreate = `
INSERT INTO invitations (id, household_id, email, role, invited_by, token_hash, status, expires_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, 'pending', $7, $8, $8)
RETURNING ` + invitationColumns

	sqlGetByID = `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`

	sqlGetByTokenHash = `SELECT ` + invitationColumns + ` FROM invitations WHERE token_hash = $1`

	sqlGetPending = `
SELECT ` + invitationColumns + `
FROM invitations
WHERE household_id = $1 AND email = $2 AND status = 'pending'`

	// Only a live invitation can be accepted, declined or cancelled.
	sqlRespond = `
UPDATE invitations
SET status = $2, responded_at = $3, responded_by = $4, updated_at = $3
WHERE id = $1 AND status = 'pending' AND expires_at > $3
RETURNING ` + invitationColumns

	sqlExpire = `
UPDATE invitations
SET status = 'expired', updated_at = $2
WHERE id = $1 AND status = 'pending' AND expires_at <= $2
RETURNING ` + invitationColumns

	sqlCleanupExpired = `
UPDATE invitations
SET status = 'expired', updated_at = $1
WHERE status = 'pending' AND expires_at <= $1`
)

// Repo provides invitation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new invitation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a pending invitation. Another pending invitation for the
// same household and email yields domain.ErrInvitationExists.
func (r *Repo) Create(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlCreate,
		inv.ID, inv.HouseholdID, inv.Email, string(inv.Role), inv.InvitedBy, inv.TokenHash, inv.ExpiresAt, inv.CreatedAt,
	)
	created, err := scanInvitation(row)
	if err != nil {
		if postgres.IsUniqueViolation(err, pendingIndex) {
			return nil, fmt.Errorf("invitation %s: %w", inv.Email, domain.ErrInvitationExists)
		}
		return nil, postgres.MapError(err, "invitation", inv.ID)
	}
	return created, nil
}

// GetByID returns an invitation by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invitation, error) {
	inv, err := scanInvitation(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlGetByID, id))
	if err != nil {
		return nil, postgres.MapError(err, "invitation", id)
	}
	return inv, nil
}

// GetByTokenHash returns the invitation whose token hashes to hash.
func (r *Repo) GetByTokenHash(ctx context.Context, hash string) (*domain.Invitation, error) {
	inv, err := scanInvitation(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlGetByTokenHash, hash))
	if err != nil {
		return nil, postgres.MapError(err, "invitation", "by token")
	}
	return inv, nil
}

// GetPending returns the pending invitation for (household, email), expired
// or not.
func (r *Repo) GetPending(ctx context.Context, householdID uuid.UUID, email string) (*domain.Invitation, error) {
	inv, err := scanInvitation(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlGetPending, householdID, email))
	if err != nil {
		return nil, postgres.MapError(err, "invitation", email)
	}
	return inv, nil
}

// Respond moves a live pending invitation to status (accepted, declined or
// cancelled). When the invitation is no longer pending or is past its
// expiry nothing changes and domain.ErrInvitationNotPending is returned;
// the caller re-reads to tell the two apart.
func (r *Repo) Respond(ctx context.Context, id uuid.UUID, status domain.InvitationStatus, respondedBy *uuid.UUID, now time.Time) (*domain.Invitation, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlRespond, id, string(status), now, respondedBy)
	inv, err := scanInvitation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("invitation %s: %w", id, domain.ErrInvitationNotPending)
		}
		return nil, postgres.MapError(err, "invitation", id)
	}
	return inv, nil
}

// Expire flips a pending invitation past its expiry to expired. Returns
// domain.ErrInvitationNotPending when another writer got there first or the
// invitation is still live.
func (r *Repo) Expire(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Invitation, error) {
	inv, err := scanInvitation(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlExpire, id, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("invitation %s: %w", id, domain.ErrInvitationNotPending)
		}
		return nil, postgres.MapError(err, "invitation", id)
	}
	return inv, nil
}

// CleanupExpired flips every pending invitation with expires_at <= now to
// expired in one statement and returns how many changed.
func (r *Repo) CleanupExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlCleanupExpired, now)
	if err != nil {
		return 0, postgres.MapError(err, "invitations", "cleanup")
	}
	return tag.RowsAffected(), nil
}

// ListByHousehold returns invitations of a household, newest first,
// optionally filtered by stored status.
func (r *Repo) ListByHousehold(ctx context.Context, householdID uuid.UUID, status *domain.InvitationStatus) ([]domain.Invitation, error) {
	b := postgres.Builder.Select(invitationColumns).
		From("invitations").
		Where("household_id = ?", householdID).
		OrderBy("created_at DESC", "id")
	if status != nil {
		b = b.Where("status = ?", string(*status))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build invitation list: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Invitation, error) {
		inv, err := scanInvitation(row)
		if err != nil {
			return domain.Invitation{}, err
		}
		return *inv, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan invitations: %w", err)
	}
	return out, nil
}

func scanInvitation(row pgx.Row) (*domain.Invitation, error) {
	var (
		inv    domain.Invitation
		role   string
		status string
	)
	err := row.Scan(&inv.ID, &inv.HouseholdID, &inv.Email, &role, &inv.InvitedBy, &inv.TokenHash, &status,
		&inv.ExpiresAt, &inv.RespondedAt, &inv.RespondedBy, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	inv.Role = domain.Role(role)
	inv.Status = domain.InvitationStatus(status)
	return &inv, nil
}
