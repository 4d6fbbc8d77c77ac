package vote

import (
	"context"
	"log/slog"

	"github.com/pixelaward/goty-backend/internal/domain"
	"github.com/pixelaward/goty-backend/pkg/ctxutil"
)

// Remove withdraws the authenticated user's vote in a category.
// Idempotent: removing a vote that does not exist is not an error.
func (s *Service) Remove(ctx context.Context, categoryID int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if categoryID <= 0 {
		return domain.NewValidationError("category_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.votes.Delete(txCtx, categoryID, userID)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "vote removed",
		slog.Int64("user_id", userID),
		slog.Int64("category_id", categoryID),
	)

	return nil
}
