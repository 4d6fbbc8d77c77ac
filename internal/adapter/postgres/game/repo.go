// Package game implements the read side of the game catalog. The catalog
// itself is maintained by an external moderation flow; the ledgers only
// need existence, year, status and the per-game category restriction list
// to decide eligibility.
package game

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/pixelaward/goty-backend/internal/adapter/postgres"
	"github.com/pixelaward/goty-backend/internal/domain"
)

// Repo provides game catalog reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new game repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, title, year, status, restricted_categories
FROM games
WHERE id = $1`

// GetByID returns a game by primary key.
// Returns domain.ErrNotFound if the game does not exist.
func (r *Repo) GetByID(ctx context.Context, gameID int64) (*domain.Game, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var g domain.Game
	err := querier.QueryRow(ctx, getByIDSQL, gameID).Scan(
		&g.ID, &g.Title, &g.Year, &g.Status, &g.RestrictedCategories,
	)
	if err != nil {
		return nil, postgres.MapError(err, "game", gameID)
	}

	return &g, nil
}
