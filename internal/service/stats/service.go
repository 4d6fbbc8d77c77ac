// Package stats exposes read-only aggregates over the election data:
// per-year category counts and per-category breakdowns combining
// nomination standing with the running vote tally.
package stats

import (
	"context"
	"log/slog"

	"github.com/pixelaward/goty-backend/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	CountByPhase(ctx context.Context, year int) (map[domain.Phase]int, error)
}

type nominationRepo interface {
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
}

type finalistSelector interface {
	Finalists(ctx context.Context, categoryID int64) ([]domain.Finalist, error)
}

type tallier interface {
	Tally(ctx context.Context, categoryID int64) (*domain.TallyResult, error)
}

// Overview summarizes a year's categories by phase.
type Overview struct {
	Year       int
	Total      int
	Nominating int
	Voting     int
	Closed     int
}

// FinalistShare is a finalist together with its share of the category's
// nominations.
type FinalistShare struct {
	GameID          int64
	NominationCount int
	Percentage      int
}

// CategoryBreakdown combines a category's nomination standing with its
// vote tally. Tally is nil while the category is still nominating.
type CategoryBreakdown struct {
	CategoryID       int64
	Phase            domain.Phase
	TotalNominations int
	Finalists        []FinalistShare
	Tally            *domain.TallyResult
}

// Service aggregates election statistics. All operations are pure reads.
type Service struct {
	categories  categoryRepo
	nominations nominationRepo
	finalists   finalistSelector
	tallies     tallier
	log         *slog.Logger
}

// NewService creates a new stats service.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	nominations nominationRepo,
	finalists finalistSelector,
	tallies tallier,
) *Service {
	return &Service{
		categories:  categories,
		nominations: nominations,
		finalists:   finalists,
		tallies:     tallies,
		log:         log.With("service", "stats"),
	}
}

// Year returns the per-phase category counts for a year.
func (s *Service) Year(ctx context.Context, year int) (*Overview, error) {
	counts, err := s.categories.CountByPhase(ctx, year)
	if err != nil {
		return nil, err
	}

	o := &Overview{
		Year:       year,
		Nominating: counts[domain.PhaseNomination],
		Voting:     counts[domain.PhaseVote],
		Closed:     counts[domain.PhaseClosed],
	}
	o.Total = o.Nominating + o.Voting + o.Closed

	return o, nil
}

// Category returns the breakdown for one category: each finalist's share
// of the total nominations, and the vote tally once voting has started.
func (s *Service) Category(ctx context.Context, categoryID int64) (*CategoryBreakdown, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	total, err := s.nominations.CountByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	finalists, err := s.finalists.Finalists(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	breakdown := &CategoryBreakdown{
		CategoryID:       categoryID,
		Phase:            category.Phase,
		TotalNominations: total,
		Finalists:        make([]FinalistShare, 0, len(finalists)),
	}
	for _, f := range finalists {
		breakdown.Finalists = append(breakdown.Finalists, FinalistShare{
			GameID:          f.GameID,
			NominationCount: f.NominationCount,
			Percentage:      domain.Percentage(f.NominationCount, total),
		})
	}

	if category.Phase != domain.PhaseNomination {
		tally, err := s.tallies.Tally(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		breakdown.Tally = tally
	}

	return breakdown, nil
}
