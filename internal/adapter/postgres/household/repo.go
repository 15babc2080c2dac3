// Package household implements household and membership persistence using
// PostgreSQL. Memberships belong to the household aggregate, so both live
// in one repository.
package household

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

const householdColumns = `id, name, owner_id, currency, timezone, locale, member_count, created_at, updated_at`

const (
	sqlCreate = `
INSERT INTO households (id, name, owner_id, currency, timezone, locale, member_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $7)
RETURNING ` + householdColumns

	sqlGetByID = `SELECT ` + householdColumns + ` FROM households WHERE id = $1`

	sqlGetForUpdate = `SELECT ` + householdColumns + ` FROM households WHERE id = $1 FOR UPDATE`

	sqlListForUser = `
SELECT h.id, h.name, h.owner_id, h.currency, h.timezone, h.locale, h.member_count, h.created_at, h.updated_at
FROM households h
JOIN memberships m ON m.household_id = h.id
WHERE m.user_id = $1 AND m.is_active
ORDER BY h.created_at, h.id`

	sqlDelete = `DELETE FROM households WHERE id = $1`

	sqlRecountMembers = `
UPDATE households
SET member_count = (SELECT count(*) FROM memberships WHERE household_id = $1 AND is_active),
    updated_at = now()
WHERE id = $1
RETURNING member_count`
)

// Repo provides household and membership persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new household repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Households
// ---------------------------------------------------------------------------

// Create inserts a household with member_count = 0. The caller adds the
// owner membership and recounts in the same transaction.
func (r *Repo) Create(ctx context.Context, h *domain.Household) (*domain.Household, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlCreate,
		h.ID, h.Name, h.OwnerID, h.Settings.Currency, h.Settings.Timezone, h.Settings.Locale, h.CreatedAt,
	)
	created, err := scanHousehold(row)
	if err != nil {
		return nil, postgres.MapError(err, "household", h.ID)
	}
	return created, nil
}

// GetByID returns a household by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Household, error) {
	h, err := scanHousehold(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlGetByID, id))
	if err != nil {
		return nil, postgres.MapError(err, "household", id)
	}
	return h, nil
}

// GetForUpdate returns a household and holds its row lock until the
// surrounding transaction ends. Membership mutations serialize on it.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Household, error) {
	h, err := scanHousehold(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlGetForUpdate, id))
	if err != nil {
		return nil, postgres.MapError(err, "household", id)
	}
	return h, nil
}

// ListForUser returns households where the user has an active membership.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Household, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlListForUser, userID)
	if err != nil {
		return nil, fmt.Errorf("list households for user: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Household, error) {
		h, err := scanHousehold(row)
		if err != nil {
			return domain.Household{}, err
		}
		return *h, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan households: %w", err)
	}
	return out, nil
}

// Update applies a partial update. An empty patch only re-reads the row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.HouseholdUpdateParams) (*domain.Household, error) {
	if p.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder.Update("households").
		Set("updated_at", time.Now().UTC()).
		Where("id = ?", id).
		Suffix("RETURNING " + householdColumns)
	if p.Name != nil {
		b = b.Set("name", *p.Name)
	}
	if p.Currency != nil {
		b = b.Set("currency", *p.Currency)
	}
	if p.Timezone != nil {
		b = b.Set("timezone", *p.Timezone)
	}
	if p.Locale != nil {
		b = b.Set("locale", *p.Locale)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build household update: %w", err)
	}

	h, err := scanHousehold(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "household", id)
	}
	return h, nil
}

// Delete removes the household. Memberships, invitations, lists, items and
// inventory go with it through ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlDelete, id)
	if err != nil {
		return postgres.MapError(err, "household", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("household %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// RecountMembers sets member_count to the number of active memberships and
// returns it.
func (r *Repo) RecountMembers(ctx context.Context, id uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlRecountMembers, id).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "household", id)
	}
	return n, nil
}

func scanHousehold(row pgx.Row) (*domain.Household, error) {
	var h domain.Household
	err := row.Scan(&h.ID, &h.Name, &h.OwnerID,
		&h.Settings.Currency, &h.Settings.Timezone, &h.Settings.Locale,
		&h.MemberCount, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}
