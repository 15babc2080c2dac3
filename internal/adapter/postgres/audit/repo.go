// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

const auditColumns = `id, user_id, household_id, entity_type, entity_id, action, changes, created_at`

const (
	sqlCreate = `
INSERT INTO audit_log (id, user_id, household_id, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, now()))
RETURNING ` + auditColumns

	sqlListByHousehold = `
SELECT ` + auditColumns + `
FROM audit_log
WHERE household_id = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`

	sqlListByEntity = `
SELECT ` + auditColumns + `
FROM audit_log
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC, id
LIMIT $3`
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
// A zero ID or CreatedAt is filled in.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	var createdAt any
	if !record.CreatedAt.IsZero() {
		createdAt = record.CreatedAt
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlCreate,
		record.ID, record.UserID, record.HouseholdID, string(record.EntityType),
		record.EntityID, string(record.Action), changesJSON, createdAt,
	)
	created, err := scanRecord(row)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}
	return created, nil
}

// Log creates an audit record without returning it.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByHousehold returns the household activity feed, newest first.
func (r *Repo) ListByHousehold(ctx context.Context, householdID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlListByHousehold, householdID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit_records by household: %w", err)
	}
	return collect(rows)
}

// ListByEntity returns the change history for a specific entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlListByEntity, string(entityType), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit_records by entity: %w", err)
	}
	return collect(rows)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func collect(rows pgx.Rows) ([]domain.AuditRecord, error) {
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditRecord, error) {
		return scanRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan audit_records: %w", err)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec        domain.AuditRecord
		entityType string
		action     string
		changes    []byte
	)
	err := row.Scan(&rec.ID, &rec.UserID, &rec.HouseholdID, &entityType, &rec.EntityID, &action, &changes, &rec.CreatedAt)
	if err != nil {
		return domain.AuditRecord{}, err
	}
	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.AuditAction(action)

	if len(changes) > 0 {
		m := make(map[string]any)
		if err := json.Unmarshal(changes, &m); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
		}
		rec.Changes = m
	}
	return rec, nil
}
