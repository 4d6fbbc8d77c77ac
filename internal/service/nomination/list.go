package nomination

import (
	"context"

	"github.com/pixelaward/goty-backend/internal/domain"
	"github.com/pixelaward/goty-backend/pkg/ctxutil"
)

// ListMine returns the games the authenticated user has nominated in a
// category, oldest first. Pure read.
func (s *Service) ListMine(ctx context.Context, categoryID int64) ([]int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if categoryID <= 0 {
		return nil, domain.NewValidationError("category_id", "required")
	}

	return s.nominations.ListGameIDsForUser(ctx, categoryID, userID)
}
