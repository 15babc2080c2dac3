package shopping

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

const itemColumns = `id, list_id, name, category, quantity, unit, status, priority, estimated_cost, notes, added_by, purchased_by, purchased_at, created_at, updated_at`

const (
	sqlCreateItem = `
INSERT INTO shopping_items (id, list_id, name, category, quantity, unit, status, priority, estimated_cost, notes, added_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
RETURNING ` + itemColumns

	sqlGetItem = `SELECT ` + itemColumns + ` FROM shopping_items WHERE id = $1`

	sqlListItems = `
SELECT ` + itemColumns + `
FROM shopping_items
WHERE list_id = $1
ORDER BY CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, created_at, id`

	sqlDeleteItem = `DELETE FROM shopping_items WHERE id = $1`

	sqlDeletePurchased = `DELETE FROM shopping_items WHERE list_id = $1 AND status = 'purchased'`
)

// ---------------------------------------------------------------------------
// Items
// ---------------------------------------------------------------------------

// CreateItem inserts an item. Callers recompute list aggregates afterwards.
func (r *Repo) CreateItem(ctx context.Context, it *domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlCreateItem,
		it.ID, it.ListID, it.Name, it.Category, it.Quantity, it.Unit,
		string(it.Status), string(it.Priority), it.EstimatedCost, it.Notes, it.AddedBy, it.CreatedAt,
	)
	created, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "shopping_item", it.ID)
	}
	return created, nil
}

// GetItem returns an item by primary key.
func (r *Repo) GetItem(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error) {
	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlGetItem, id))
	if err != nil {
		return nil, postgres.MapError(err, "shopping_item", id)
	}
	return it, nil
}

// ListItems returns the items of a list, high priority first.
func (r *Repo) ListItems(ctx context.Context, listID uuid.UUID) ([]domain.ShoppingListItem, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlListItems, listID)
	if err != nil {
		return nil, fmt.Errorf("list shopping_items: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ShoppingListItem, error) {
		it, err := scanItem(row)
		if err != nil {
			return domain.ShoppingListItem{}, err
		}
		return *it, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan shopping_items: %w", err)
	}
	return items, nil
}

// UpdateItem applies a partial update. Moving to purchased stamps
// purchased_at and purchased_by; moving away from purchased clears them.
func (r *Repo) UpdateItem(ctx context.Context, id uuid.UUID, p domain.ShoppingItemUpdateParams) (*domain.ShoppingListItem, error) {
	now := time.Now().UTC()
	b := postgres.Builder.Update("shopping_items").
		Set("updated_at", now).
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
	if p.Priority != nil {
		b = b.Set("priority", string(*p.Priority))
	}
	switch {
	case p.ClearCost:
		b = b.Set("estimated_cost", nil)
	case p.EstimatedCost != nil:
		b = b.Set("estimated_cost", *p.EstimatedCost)
	}
	if p.Notes != nil {
		b = b.Set("notes", nullIfEmpty(*p.Notes))
	}
	if p.Status != nil {
		b = b.Set("status", string(*p.Status))
		if *p.Status == domain.ItemStatusPurchased {
			b = b.Set("purchased_at", now).Set("purchased_by", p.PurchasedBy)
		} else {
			b = b.Set("purchased_at", nil).Set("purchased_by", nil)
		}
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item update: %w", err)
	}
	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "shopping_item", id)
	}
	return it, nil
}

// DeleteItem removes an item.
func (r *Repo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlDeleteItem, id)
	if err != nil {
		return postgres.MapError(err, "shopping_item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shopping_item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeletePurchased removes every purchased item of a list and returns how
// many went.
func (r *Repo) DeletePurchased(ctx context.Context, listID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlDeletePurchased, listID)
	if err != nil {
		return 0, postgres.MapError(err, "shopping_list", listID)
	}
	return tag.RowsAffected(), nil
}

func scanItem(row pgx.Row) (*domain.ShoppingListItem, error) {
	var (
		it       domain.ShoppingListItem
		status   string
		priority string
	)
	err := row.Scan(&it.ID, &it.ListID, &it.Name, &it.Category, &it.Quantity, &it.Unit, &status, &priority,
		&it.EstimatedCost, &it.Notes, &it.AddedBy, &it.PurchasedBy, &it.PurchasedAt, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	it.Status = domain.ItemStatus(status)
	it.Priority = domain.ItemPriority(priority)
	return &it, nil
}
