// Package finalist derives a category's ranked finalist set from the
// nomination ledger. The view is recomputed on every call; it is never
// materialized, so it cannot go stale across concurrent nominations or a
// phase transition.
package finalist

import (
	"context"
	"log/slog"

	"github.com/pixelaward/goty-backend/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, categoryID int64) (*domain.Category, error)
}

type nominationRepo interface {
	TopGames(ctx context.Context, categoryID int64, limit int) ([]domain.Finalist, error)
}

// Service derives finalist views.
type Service struct {
	categories  categoryRepo
	nominations nominationRepo
	log         *slog.Logger
}

// NewService creates a new finalist selector.
func NewService(log *slog.Logger, categories categoryRepo, nominations nominationRepo) *Service {
	return &Service{
		categories:  categories,
		nominations: nominations,
		log:         log.With("service", "finalist"),
	}
}

// Finalists returns the category's top games by nomination count
// (descending, ties broken by ascending game id), at most
// domain.FinalistCount entries. When called inside a ledger transaction
// the aggregation runs on that transaction's snapshot.
// Returns domain.ErrNotFound if the category does not exist.
func (s *Service) Finalists(ctx context.Context, categoryID int64) ([]domain.Finalist, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	return s.nominations.TopGames(ctx, categoryID, domain.FinalistCount)
}
