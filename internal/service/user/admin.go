package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
	"github.com/heartmarshall/kitchentory-backend/pkg/ctxutil"
)

// SetUserRole changes the platform role of a user. Admin only; an admin
// cannot demote themselves.
func (s *Service) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	callerID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be 'user' or 'admin'")
	}
	if callerID == targetUserID && !role.IsAdmin() {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	u, err := s.users.SetRole(ctx, targetUserID, role)
	if err != nil {
		return nil, fmt.Errorf("set user role: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()),
		slog.String("by", callerID.String()),
	)
	return u, nil
}

// ListUsers returns a page of users in registration order. Admin only.
func (s *Service) ListUsers(ctx context.Context, limit, offset int) (*Page, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if limit < 0 || offset < 0 {
		return nil, domain.NewValidationError("limit", "limit and offset must be non-negative")
	}
	if limit == 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	return &Page{Users: users, Total: total}, nil
}

func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return callerID, nil
}

// GetUser returns any user by id. Admin only.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
