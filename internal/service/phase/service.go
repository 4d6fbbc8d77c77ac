// Package phase implements the category phase controller. It is the
// single gate every ledger write consults: phases advance strictly
// Nomination → Vote → Closed and never skip or regress.
package phase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pixelaward/goty-backend/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	AdvancePhase(ctx context.Context, categoryID int64, from, to domain.Phase) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides phase reads and administrative phase transitions.
type Service struct {
	categories categoryRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new phase controller.
func NewService(log *slog.Logger, categories categoryRepo, tx txManager) *Service {
	return &Service{
		categories: categories,
		tx:         tx,
		log:        log.With("service", "phase"),
	}
}

// CurrentPhase returns the category's current phase.
// Returns domain.ErrNotFound if the category does not exist.
func (s *Service) CurrentPhase(ctx context.Context, categoryID int64) (domain.Phase, error) {
	c, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return "", err
	}
	return c.Phase, nil
}

// Advance moves a category to the target phase. The target must be the
// immediate successor of the current phase; anything else fails
// domain.ErrInvalidTransition. The conditional update inside the
// transaction means a concurrent Advance can win the race at most once;
// the loser observes the already-advanced phase and fails the same way.
func (s *Service) Advance(ctx context.Context, categoryID int64, target domain.Phase) (*domain.Category, error) {
	if !target.IsValid() {
		return nil, domain.NewValidationError("phase", "unknown phase")
	}

	var advanced *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.categories.GetByID(txCtx, categoryID)
		if err != nil {
			return err
		}

		next, ok := current.Phase.Next()
		if !ok || next != target {
			return fmt.Errorf("category %d: %s -> %s: %w",
				categoryID, current.Phase, target, domain.ErrInvalidTransition)
		}

		moved, err := s.categories.AdvancePhase(txCtx, categoryID, current.Phase, target)
		if err != nil {
			return err
		}
		if !moved {
			// Phase changed underneath us between read and update.
			return fmt.Errorf("category %d: %s -> %s: %w",
				categoryID, current.Phase, target, domain.ErrInvalidTransition)
		}

		advanced, err = s.categories.GetByID(txCtx, categoryID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "phase advanced",
		slog.Int64("category_id", categoryID),
		slog.String("phase", advanced.Phase.String()),
	)

	return advanced, nil
}
