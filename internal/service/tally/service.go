// Package tally aggregates the vote ledger into per-category results:
// vote counts and percentages per finalist and the category winner.
package tally

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pixelaward/goty-backend/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	Winner(ctx context.Context, categoryID int64) (int64, error)
	DesignateWinner(ctx context.Context, categoryID, gameID int64) error
}

type voteRepo interface {
	CountsByGame(ctx context.Context, categoryID int64) (map[int64]int, error)
}

type finalistSelector interface {
	Finalists(ctx context.Context, categoryID int64) ([]domain.Finalist, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service derives tally results and manages winner designation.
type Service struct {
	categories categoryRepo
	votes      voteRepo
	finalists  finalistSelector
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new tally service.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	votes voteRepo,
	finalists finalistSelector,
	tx txManager,
) *Service {
	return &Service{
		categories: categories,
		votes:      votes,
		finalists:  finalists,
		tx:         tx,
		log:        log.With("service", "tally"),
	}
}

// Tally computes the vote aggregate for a category. Only the current
// finalists appear in the result, and the total counts their votes only:
// a vote stranded on a game that dropped out of the finalist set is
// excluded, so the per-game counts always sum to TotalVotes.
// Returns domain.ErrPhaseTooEarly while the category is still nominating.
func (s *Service) Tally(ctx context.Context, categoryID int64) (*domain.TallyResult, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.Phase == domain.PhaseNomination {
		return nil, fmt.Errorf("category %d in phase %s: %w", categoryID, category.Phase, domain.ErrPhaseTooEarly)
	}

	finalists, err := s.finalists.Finalists(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	counts, err := s.votes.CountsByGame(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, f := range finalists {
		total += counts[f.GameID]
	}

	result := &domain.TallyResult{
		CategoryID: categoryID,
		Phase:      category.Phase,
		TotalVotes: total,
		Games:      make([]domain.GameTally, 0, len(finalists)),
	}
	for _, f := range finalists {
		votes := counts[f.GameID]
		result.Games = append(result.Games, domain.GameTally{
			GameID:          f.GameID,
			NominationCount: f.NominationCount,
			VoteCount:       votes,
			Percentage:      domain.Percentage(votes, total),
		})
	}

	designated, err := s.categories.Winner(ctx, categoryID)
	switch {
	case err == nil:
		result.WinnerGameID = designated
		result.WinnerDesignated = true
	case errors.Is(err, domain.ErrNotFound):
		result.WinnerGameID = leadingGame(result.Games)
	default:
		return nil, err
	}

	return result, nil
}

// DesignateWinner records an explicit winner for a category, overriding
// the vote-count leader in every subsequent tally. The game must be one
// of the category's current finalists.
func (s *Service) DesignateWinner(ctx context.Context, categoryID, gameID int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		category, err := s.categories.GetByID(txCtx, categoryID)
		if err != nil {
			return err
		}
		if category.Phase == domain.PhaseNomination {
			return fmt.Errorf("category %d in phase %s: %w", categoryID, category.Phase, domain.ErrPhaseTooEarly)
		}

		finalists, err := s.finalists.Finalists(txCtx, categoryID)
		if err != nil {
			return err
		}
		found := false
		for _, f := range finalists {
			if f.GameID == gameID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("game %d in category %d: %w", gameID, categoryID, domain.ErrGameNotFinalist)
		}

		return s.categories.DesignateWinner(txCtx, categoryID, gameID)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "winner designated",
		slog.Int64("category_id", categoryID),
		slog.Int64("game_id", gameID),
	)

	return nil
}

// leadingGame picks the finalist with the most votes, breaking ties by
// lowest game id. The finalist slice is already ordered by nomination
// count, so a fresh scan is needed for vote order. Returns 0 when the
// category has no finalists.
func leadingGame(games []domain.GameTally) int64 {
	var leader int64
	best := -1
	for _, g := range games {
		if g.VoteCount > best || (g.VoteCount == best && g.GameID < leader) {
			leader = g.GameID
			best = g.VoteCount
		}
	}
	return leader
}
