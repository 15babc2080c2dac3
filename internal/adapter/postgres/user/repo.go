// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

const userColumns = `id, email, name, password_hash, role, created_at, updated_at`

const (
	sqlCreate = `
INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

	sqlGetByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	sqlGetByEmail = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

	sqlSetRole = `
UPDATE users SET role = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

	sqlUpdateName = `
UPDATE users SET name = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

	sqlList = `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id LIMIT $1 OFFSET $2`

	sqlCount = `SELECT count(*) FROM users`
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new user. A taken email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, sqlCreate,
		u.ID, u.Email, u.Name, u.PasswordHash, string(u.Role), u.CreatedAt, u.UpdatedAt,
	)
	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlGetByID, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlGetByEmail, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// SetRole changes the platform role of a user.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlSetRole, id, string(role)))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// UpdateName changes the display name of a user.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlUpdateName, id, name))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// List returns users in registration order.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlList, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		u, err := scanUser(row)
		if err != nil {
			return domain.User{}, err
		}
		return *u, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	return users, nil
}

// Count returns the number of registered users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlCount).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
