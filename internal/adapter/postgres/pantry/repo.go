// Package pantry implements inventory persistence using PostgreSQL.
package pantry

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

const itemColumns = `id, household_id, name, category, quantity, unit, location, expires_at, low_stock_threshold, created_by, created_at, updated_at`

const (
	sqlCreate = `
INSERT INTO inventory_items (id, household_id, name, category, quantity, unit, location, expires_at, low_stock_threshold, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
RETURNING ` + itemColumns

	sqlGetByID = `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`

	sqlDelete = `DELETE FROM inventory_items WHERE id = $1`

	// Items that can raise an alert at all.
	sqlAlertCandidates = `
SELECT ` + itemColumns + `
FROM inventory_items
WHERE household_id = $1
  AND (expires_at IS NOT NULL OR low_stock_threshold IS NOT NULL)
ORDER BY name, id`

	sqlLowStock = `
SELECT ` + itemColumns + `
FROM inventory_items
WHERE household_id = $1
  AND low_stock_threshold IS NOT NULL
  AND quantity <= low_stock_threshold
ORDER BY name, id`
)

// DefaultLimit caps List when the filter does not.
const DefaultLimit = 200

// Repo provides inventory persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new pantry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts an inventory item.
func (r *Repo) Create(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlCreate,
		it.ID, it.HouseholdID, it.Name, it.Category, it.Quantity, it.Unit, it.Location,
		it.ExpiresAt, it.LowStockThreshold, it.CreatedBy, it.CreatedAt,
	)
	created, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "inventory_item", it.ID)
	}
	return created, nil
}

// GetByID returns an inventory item by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlGetByID, id))
	if err != nil {
		return nil, postgres.MapError(err, "inventory_item", id)
	}
	return it, nil
}

// Update applies a partial update.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.InventoryUpdateParams) (*domain.InventoryItem, error) {
	b := postgres.Builder.Update("inventory_items").
		Set("updated_at", time.Now().UTC()).
		Where("id = ?", id).
		Suffix("RETURNING " + itemColumns)

	if p.Name != nil {
		b = b.Set("name", *p.Name)
	}
	if p.Category != nil {
		b = b.Set("category", *p.Category)
	}
	if p.Quantity != nil {
		b = b.Set("quantity", *p.Quantity)
	}
	if p.Unit != nil {
		b = b.Set("unit", nullIfEmpty(*p.Unit))
	}
	if p.Location != nil {
		b = b.Set("location", nullIfEmpty(*p.Location))
	}
	switch {
	case p.ClearExpiry:
		b = b.Set("expires_at", nil)
	case p.ExpiresAt != nil:
		b = b.Set("expires_at", *p.ExpiresAt)
	}
	switch {
	case p.ClearThreshold:
		b = b.Set("low_stock_threshold", nil)
	case p.LowStockThreshold != nil:
		b = b.Set("low_stock_threshold", *p.LowStockThreshold)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build inventory update: %w", err)
	}
	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "inventory_item", id)
	}
	return it, nil
}

// Delete removes an inventory item.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlDelete, id)
	if err != nil {
		return postgres.MapError(err, "inventory_item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inventory_item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns inventory items of a household matching the filter, by name.
// Search matches a case-insensitive substring of the name.
func (r *Repo) List(ctx context.Context, householdID uuid.UUID, f domain.InventoryFilter) ([]domain.InventoryItem, error) {
	limit := f.Limit
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	b := postgres.Builder.Select(itemColumns).
		From("inventory_items").
		Where(squirrel.Eq{"household_id": householdID}).
		OrderBy("name", "id").
		Limit(uint64(limit))
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}
	if f.Category != "" {
		b = b.Where(squirrel.Eq{"category": f.Category})
	}
	if f.Location != "" {
		b = b.Where(squirrel.Eq{"location": f.Location})
	}
	if f.Search != "" {
		b = b.Where(squirrel.ILike{"name": "%" + escapeLike(f.Search) + "%"})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build inventory list: %w", err)
	}
	return r.query(ctx, query, args...)
}

// AlertCandidates returns items that have an expiry or a stock threshold.
func (r *Repo) AlertCandidates(ctx context.Context, householdID uuid.UUID) ([]domain.InventoryItem, error) {
	return r.query(ctx, sqlAlertCandidates, householdID)
}

// LowStock returns items at or below their threshold.
func (r *Repo) LowStock(ctx context.Context, householdID uuid.UUID) ([]domain.InventoryItem, error) {
	return r.query(ctx, sqlLowStock, householdID)
}

func (r *Repo) query(ctx context.Context, sql string, args ...any) ([]domain.InventoryItem, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query inventory_items: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InventoryItem, error) {
		it, err := scanItem(row)
		if err != nil {
			return domain.InventoryItem{}, err
		}
		return *it, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan inventory_items: %w", err)
	}
	return items, nil
}

func scanItem(row pgx.Row) (*domain.InventoryItem, error) {
	var it domain.InventoryItem
	err := row.Scan(&it.ID, &it.HouseholdID, &it.Name, &it.Category, &it.Quantity, &it.Unit, &it.Location,
		&it.ExpiresAt, &it.LowStockThreshold, &it.CreatedBy, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
