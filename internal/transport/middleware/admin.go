package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
	"github.com/heartmarshall/kitchentory-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrUnauthorized for anonymous callers and
// domain.ErrForbidden if the context user is not a platform admin.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// AdminOnly guards a route with RequireAdmin.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch err := RequireAdmin(r.Context()); err {
		case nil:
			next.ServeHTTP(w, r)
		case domain.ErrUnauthorized:
			writeError(w, http.StatusUnauthorized, "unauthorized")
		default:
			writeError(w, http.StatusForbidden, "forbidden")
		}
	})
}
