package vote

import (
	"context"

	"github.com/pixelaward/goty-backend/internal/domain"
	"github.com/pixelaward/goty-backend/pkg/ctxutil"
)

// MyVote returns the game the authenticated user voted for in a category,
// or nil when the user has no live vote there. Pure read.
func (s *Service) MyVote(ctx context.Context, categoryID int64) (*int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if categoryID <= 0 {
		return nil, domain.NewValidationError("category_id", "required")
	}

	return s.votes.GameIDForUser(ctx, categoryID, userID)
}

// MyVotedCategories returns the categories of a year the authenticated
// user has a live vote in. Pure read.
func (s *Service) MyVotedCategories(ctx context.Context, year int) ([]int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.votes.CategoryIDsForUserYear(ctx, userID, year)
}
