package middleware

import (
	"context"

	"github.com/pixelaward/goty-backend/internal/domain"
	"github.com/pixelaward/goty-backend/pkg/ctxutil"
)

// RequireAdmin checks that the request carries an authenticated admin
// identity. Call it at the top of administrative handlers rather than
// wrapping routes, so the route table stays flat.
// Returns domain.ErrUnauthorized for anonymous requests and
// domain.ErrForbidden for authenticated non-admins.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !domain.UserRole(ctxutil.UserRoleFromCtx(ctx)).IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
