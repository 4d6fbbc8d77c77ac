package nomination

import (
	"context"
	"log/slog"

	"github.com/pixelaward/goty-backend/internal/domain"
	"github.com/pixelaward/goty-backend/pkg/ctxutil"
)

// Remove withdraws the authenticated user's own nomination. Unlike Add,
// removal is allowed in any phase; a user may always take back a
// nomination before tallying reads it.
// Returns domain.ErrNotFound when no such nomination exists.
func (s *Service) Remove(ctx context.Context, input RemoveInput) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var count int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.nominations.Delete(txCtx, input.CategoryID, input.GameID, userID); err != nil {
			return err
		}

		var err error
		count, err = s.nominations.CountForUser(txCtx, input.CategoryID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "nomination removed",
		slog.Int64("user_id", userID),
		slog.Int64("category_id", input.CategoryID),
		slog.Int64("game_id", input.GameID),
		slog.Int("count", count),
	)

	return &Result{Count: count, Quota: domain.NominationQuota}, nil
}
