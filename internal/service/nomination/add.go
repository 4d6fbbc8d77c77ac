package nomination

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pixelaward/goty-backend/internal/domain"
	"github.com/pixelaward/goty-backend/pkg/ctxutil"
)

// Add records a nomination for the authenticated user. Phase gate,
// eligibility, quota and uniqueness are all checked inside one
// transaction; the phase row is read FOR SHARE so a concurrent Advance
// cannot commit between the check and the insert. The unique index is the
// backstop for a concurrent duplicate; a constraint race still comes
// back as domain.ErrAlreadyNominated. The quota check has no constraint
// backstop (two different games are two valid rows), so concurrent Adds
// by the same user serialize on an advisory lock before counting.
func (s *Service) Add(ctx context.Context, input AddInput) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var count int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		category, err := s.categories.GetByID(txCtx, input.CategoryID)
		if err != nil {
			return err
		}

		phase, err := s.categories.PhaseForShare(txCtx, input.CategoryID)
		if err != nil {
			return err
		}
		if phase != domain.PhaseNomination {
			return fmt.Errorf("category %d in phase %s: %w", input.CategoryID, phase, domain.ErrPhaseClosed)
		}

		game, err := s.games.GetByID(txCtx, input.GameID)
		if err != nil {
			return err
		}
		if !game.EligibleFor(*category) {
			return fmt.Errorf("game %d in category %d: %w", input.GameID, input.CategoryID, domain.ErrGameNotEligible)
		}

		if err := s.nominations.AcquireUserLock(txCtx, input.CategoryID, userID); err != nil {
			return err
		}

		count, err = s.nominations.CountForUser(txCtx, input.CategoryID, userID)
		if err != nil {
			return err
		}
		if count >= domain.NominationQuota {
			return fmt.Errorf("user %d in category %d: %w", userID, input.CategoryID, domain.ErrQuotaExceeded)
		}

		if err := s.nominations.Insert(txCtx, input.CategoryID, input.GameID, userID); err != nil {
			return err
		}
		count++

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "nomination added",
		slog.Int64("user_id", userID),
		slog.Int64("category_id", input.CategoryID),
		slog.Int64("game_id", input.GameID),
		slog.Int("count", count),
	)

	return &Result{Count: count, Quota: domain.NominationQuota}, nil
}
