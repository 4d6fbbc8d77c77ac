// Package vote implements the final-vote ledger: one live vote per user
// per category, cast only among the category's current finalists while
// the category is in the Vote phase.
package vote

import (
	"context"
	"log/slog"

	"github.com/pixelaward/goty-backend/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	PhaseForShare(ctx context.Context, categoryID int64) (domain.Phase, error)
}

type gameRepo interface {
	GetByID(ctx context.Context, gameID int64) (*domain.Game, error)
}

type voteRepo interface {
	Upsert(ctx context.Context, categoryID, userID, gameID int64) error
	Delete(ctx context.Context, categoryID, userID int64) error
	GameIDForUser(ctx context.Context, categoryID, userID int64) (*int64, error)
	CategoryIDsForUserYear(ctx context.Context, userID int64, year int) ([]int64, error)
}

type finalistSelector interface {
	Finalists(ctx context.Context, categoryID int64) ([]domain.Finalist, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides vote ledger operations.
type Service struct {
	categories categoryRepo
	games      gameRepo
	votes      voteRepo
	finalists  finalistSelector
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new vote service.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	games gameRepo,
	votes voteRepo,
	finalists finalistSelector,
	tx txManager,
) *Service {
	return &Service{
		categories: categories,
		games:      games,
		votes:      votes,
		finalists:  finalists,
		tx:         tx,
		log:        log.With("service", "vote"),
	}
}
