// Package ctxutil carries request-scoped identity and correlation values.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// AdminRole is the platform role that unlocks /admin routes.
const AdminRole = "admin"

type (
	userIDKey    struct{}
	userRoleKey  struct{}
	requestIDKey struct{}
)

// WithIdentity stores the authenticated user and platform role.
func WithIdentity(ctx context.Context, id uuid.UUID, role string) context.Context {
	return WithUserRole(WithUserID(ctx, id), role)
}

// WithUserID stores the authenticated user id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the authenticated user id. A missing or nil id
// reports false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithUserRole stores the caller's platform role ("user" or "admin").
func WithUserRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, userRoleKey{}, role)
}

// UserRoleFromCtx returns the platform role, or "" when absent.
func UserRoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey{}).(string)
	return role
}

// IsAdminCtx reports whether an authenticated caller is a platform admin.
func IsAdminCtx(ctx context.Context) bool {
	_, ok := UserIDFromCtx(ctx)
	return ok && UserRoleFromCtx(ctx) == AdminRole
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request id, or "" when absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
