// Package vote implements the final-vote ledger repository using
// PostgreSQL. The (category_id, user_id) unique index plus an ON CONFLICT
// upsert enforce the one-live-vote invariant without a remove-then-add
// round trip.
package vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/pixelaward/goty-backend/internal/adapter/postgres"
)

// Repo provides vote ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const upsertSQL = `
INSERT INTO votes (category_id, user_id, game_id)
VALUES ($1, $2, $3)
ON CONFLICT (category_id, user_id)
DO UPDATE SET game_id = EXCLUDED.game_id, voted_at = now()`

const deleteSQL = `
DELETE FROM votes WHERE category_id = $1 AND user_id = $2`

const gameIDForUserSQL = `
SELECT game_id FROM votes WHERE category_id = $1 AND user_id = $2`

const categoryIDsForUserYearSQL = `
SELECT v.category_id
FROM votes v
JOIN categories c ON c.id = v.category_id
WHERE v.user_id = $1 AND c.year = $2
ORDER BY v.category_id`

const countsByGameSQL = `
SELECT game_id, count(*) AS vote_count
FROM votes
WHERE category_id = $1
GROUP BY game_id`

// Upsert records or replaces the user's vote in a category. A vote for
// a game that vanished from the catalog surfaces as domain.ErrNotFound
// via the foreign key mapping.
func (r *Repo) Upsert(ctx context.Context, categoryID, userID, gameID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, upsertSQL, categoryID, userID, gameID); err != nil {
		return postgres.MapError(err, "vote", categoryID)
	}

	return nil
}

// Delete removes the user's vote in a category. Idempotent: deleting a
// vote that does not exist is not an error.
func (r *Repo) Delete(ctx context.Context, categoryID, userID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteSQL, categoryID, userID); err != nil {
		return postgres.MapError(err, "vote", categoryID)
	}

	return nil
}

// GameIDForUser returns the game the user voted for in a category, or nil
// when the user has no live vote there.
func (r *Repo) GameIDForUser(ctx context.Context, categoryID, userID int64) (*int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var gameID int64
	err := querier.QueryRow(ctx, gameIDForUserSQL, categoryID, userID).Scan(&gameID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("my vote: %w", err)
	}

	return &gameID, nil
}

// CategoryIDsForUserYear returns the categories of a given year the user
// has a live vote in. Returns an empty slice (not nil) when there are none.
func (r *Repo) CategoryIDsForUserYear(ctx context.Context, userID int64, year int) ([]int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, categoryIDsForUserYearSQL, userID, year)
	if err != nil {
		return nil, fmt.Errorf("voted categories: %w", err)
	}
	defer rows.Close()

	result := []int64{}
	for rows.Next() {
		var categoryID int64
		if err := rows.Scan(&categoryID); err != nil {
			return nil, fmt.Errorf("scan voted category: %w", err)
		}
		result = append(result, categoryID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("voted categories: %w", err)
	}

	return result, nil
}

// CountsByGame returns the number of votes per game in a category.
// Games with no votes are absent from the map. Always computed fresh from
// the ledger rows.
func (r *Repo) CountsByGame(ctx context.Context, categoryID int64) (map[int64]int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countsByGameSQL, categoryID)
	if err != nil {
		return nil, fmt.Errorf("counts by game: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var gameID int64
		var n int
		if err := rows.Scan(&gameID, &n); err != nil {
			return nil, fmt.Errorf("scan vote count: %w", err)
		}
		counts[gameID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("counts by game: %w", err)
	}

	return counts, nil
}
