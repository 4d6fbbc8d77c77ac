package vote

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pixelaward/goty-backend/internal/domain"
	"github.com/pixelaward/goty-backend/pkg/ctxutil"
)

// Cast records the authenticated user's final vote. An existing vote in
// the same category is atomically replaced by the upsert; the one-vote
// invariant never needs a remove-then-add round trip. Phase re-read
// (FOR SHARE) and the finalist membership check run inside the same
// transaction as the write, so neither a phase transition nor a shifting
// finalist set can slip between check and write.
func (s *Service) Cast(ctx context.Context, input CastInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.categories.GetByID(txCtx, input.CategoryID); err != nil {
			return err
		}

		phase, err := s.categories.PhaseForShare(txCtx, input.CategoryID)
		if err != nil {
			return err
		}
		switch phase {
		case domain.PhaseNomination:
			return fmt.Errorf("category %d in phase %s: %w", input.CategoryID, phase, domain.ErrPhaseTooEarly)
		case domain.PhaseClosed:
			return fmt.Errorf("category %d in phase %s: %w", input.CategoryID, phase, domain.ErrPhaseClosed)
		}

		finalists, err := s.finalists.Finalists(txCtx, input.CategoryID)
		if err != nil {
			return err
		}
		if !containsGame(finalists, input.GameID) {
			// Distinguish a missing game from a real-but-unranked one.
			if _, err := s.games.GetByID(txCtx, input.GameID); err != nil {
				return err
			}
			return fmt.Errorf("game %d in category %d: %w", input.GameID, input.CategoryID, domain.ErrGameNotFinalist)
		}

		return s.votes.Upsert(txCtx, input.CategoryID, userID, input.GameID)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "vote cast",
		slog.Int64("user_id", userID),
		slog.Int64("category_id", input.CategoryID),
		slog.Int64("game_id", input.GameID),
	)

	return nil
}

func containsGame(finalists []domain.Finalist, gameID int64) bool {
	for _, f := range finalists {
		if f.GameID == gameID {
			return true
		}
	}
	return false
}
