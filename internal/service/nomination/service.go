// Package nomination implements the nomination ledger: phase-gated,
// quota-bounded, unique (category, game, user) nomination facts.
package nomination

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

type nominationRepo interface {
	AcquireUserLock(ctx context.Context, categoryID, userID int64) error
	Insert(ctx context.Context, categoryID, gameID, userID int64) error
	Delete(ctx context.Context, categoryID, gameID, userID int64) error
	CountForUser(ctx context.Context, categoryID, userID int64) (int, error)
	ListGameIDsForUser(ctx context.Context, categoryID, userID int64) ([]int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides nomination ledger operations.
type Service struct {
	categories  categoryRepo
	games       gameRepo
	nominations nominationRepo
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new nomination service.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	games gameRepo,
	nominations nominationRepo,
	tx txManager,
) *Service {
	return &Service{
		categories:  categories,
		games:       games,
		nominations: nominations,
		tx:          tx,
		log:         log.With("service", "nomination"),
	}
}

// Result reports a user's nomination count in a category after a
// mutation, together with the fixed quota.
type Result struct {
	Count int
	Quota int
}
