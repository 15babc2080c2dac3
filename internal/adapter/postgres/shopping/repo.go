// Package shopping implements shopping list and item persistence using
// PostgreSQL.
package shopping

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

const listColumns = `id, household_id, name, description, is_archived, created_by, item_count, completed_item_count, total_estimated_cost, created_at, updated_at`

const (
	sqlCreateList = `
INSERT INTO shopping_lists (id, household_id, name, description, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + listColumns

	sqlGetList = `SELECT ` + listColumns + ` FROM shopping_lists WHERE id = $1`

	sqlGetListForUpdate = `SELECT ` + listColumns + ` FROM shopping_lists WHERE id = $1 FOR UPDATE`

	sqlDeleteList = `DELETE FROM shopping_lists WHERE id = $1`

	// Full recompute from the items table.
	sqlRecompute = `
UPDATE shopping_lists
SET item_count = s.cnt,
    completed_item_count = s.done,
    total_estimated_cost = s.cost,
    updated_at = now()
FROM (
    SELECT count(*)                                    AS cnt,
           count(*) FILTER (WHERE status = 'purchased') AS done,
           COALESCE(sum(estimated_cost), 0)            AS cost
    FROM shopping_items
    WHERE list_id = $1
) s
WHERE id = $1
RETURNING ` + listColumns
)

// Repo provides shopping persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new shopping repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Lists
// ---------------------------------------------------------------------------

// CreateList inserts an empty list.
func (r *Repo) CreateList(ctx context.Context, l *domain.ShoppingList) (*domain.ShoppingList, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlCreateList,
		l.ID, l.HouseholdID, l.Name, l.Description, l.CreatedBy, l.CreatedAt,
	)
	created, err := scanList(row)
	if err != nil {
		return nil, postgres.MapError(err, "shopping_list", l.ID)
	}
	return created, nil
}

// GetList returns a list by primary key.
func (r *Repo) GetList(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error) {
	l, err := scanList(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlGetList, id))
	if err != nil {
		return nil, postgres.MapError(err, "shopping_list", id)
	}
	return l, nil
}

// GetListForUpdate returns a list and holds its row lock until the
// surrounding transaction ends. Item mutations serialize on it.
func (r *Repo) GetListForUpdate(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error) {
	l, err := scanList(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlGetListForUpdate, id))
	if err != nil {
		return nil, postgres.MapError(err, "shopping_list", id)
	}
	return l, nil
}

// ListLists returns the lists of a household, newest first. Archived lists
// are included only when asked for.
func (r *Repo) ListLists(ctx context.Context, householdID uuid.UUID, includeArchived bool) ([]domain.ShoppingList, error) {
	b := postgres.Builder.Select(listColumns).
		From("shopping_lists").
		Where("household_id = ?", householdID).
		OrderBy("created_at DESC", "id")
	if !includeArchived {
		b = b.Where("NOT is_archived")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shopping_lists: %w", err)
	}
	lists, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ShoppingList, error) {
		l, err := scanList(row)
		if err != nil {
			return domain.ShoppingList{}, err
		}
		return *l, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan shopping_lists: %w", err)
	}
	return lists, nil
}

// UpdateList applies a partial update. An empty description clears it.
func (r *Repo) UpdateList(ctx context.Context, id uuid.UUID, p domain.ShoppingListUpdateParams) (*domain.ShoppingList, error) {
	b := postgres.Builder.Update("shopping_lists").
		Set("updated_at", time.Now().UTC()).
		Where("id = ?", id).
		Suffix("RETURNING " + listColumns)
	if p.Name != nil {
		b = b.Set("name", *p.Name)
	}
	if p.Description != nil {
		b = b.Set("description", nullIfEmpty(*p.Description))
	}
	if p.IsArchived != nil {
		b = b.Set("is_archived", *p.IsArchived)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list update: %w", err)
	}
	l, err := scanList(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "shopping_list", id)
	}
	return l, nil
}

// DeleteList removes a list and, by cascade, its items.
func (r *Repo) DeleteList(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlDeleteList, id)
	if err != nil {
		return postgres.MapError(err, "shopping_list", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shopping_list %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// RecomputeAggregates recounts item_count, completed_item_count and
// total_estimated_cost from the items and returns the updated list.
// Callers hold the list row lock.
func (r *Repo) RecomputeAggregates(ctx context.Context, listID uuid.UUID) (*domain.ShoppingList, error) {
	l, err := scanList(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlRecompute, listID))
	if err != nil {
		return nil, postgres.MapError(err, "shopping_list", listID)
	}
	return l, nil
}

func scanList(row pgx.Row) (*domain.ShoppingList, error) {
	var l domain.ShoppingList
	err := row.Scan(&l.ID, &l.HouseholdID, &l.Name, &l.Description, &l.IsArchived, &l.CreatedBy,
		&l.ItemCount, &l.CompletedItemCount, &l.TotalEstimatedCost, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
