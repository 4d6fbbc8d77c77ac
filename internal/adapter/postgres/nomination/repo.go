// Package nomination implements the nomination ledger repository using
// PostgreSQL. The (category_id, game_id, user_id) unique index is the
// race backstop: an insert that loses a check-then-write race surfaces as
// domain.ErrAlreadyNominated, never as a raw storage error.
package nomination

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/pixelaward/goty-backend/internal/adapter/postgres"
	"github.com/pixelaward/goty-backend/internal/domain"
)

// Repo provides nomination ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new nomination repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO nominations (category_id, game_id, user_id)
VALUES ($1, $2, $3)`

const deleteSQL = `
DELETE FROM nominations
WHERE category_id = $1 AND game_id = $2 AND user_id = $3`

const countForUserSQL = `
SELECT count(*) FROM nominations
WHERE category_id = $1 AND user_id = $2`

const listGameIDsForUserSQL = `
SELECT game_id FROM nominations
WHERE category_id = $1 AND user_id = $2
ORDER BY created_at, game_id`

const countByCategorySQL = `
SELECT count(*) FROM nominations WHERE category_id = $1`

const topGamesSQL = `
SELECT game_id, count(*) AS nomination_count
FROM nominations
WHERE category_id = $1
GROUP BY game_id
ORDER BY nomination_count DESC, game_id ASC
LIMIT $2`

const acquireUserLockSQL = `
SELECT pg_advisory_xact_lock(hashtextextended('nominations:' || $1::text || ':' || $2::text, 0))`

// AcquireUserLock takes a transaction-scoped advisory lock on the
// (category, user) pair. The quota has no unique constraint to backstop
// it: two concurrent Adds of different games by the same user both pass
// a plain count check. Serializing them here makes the second count see
// the first insert. Must be called inside a transaction; the lock
// releases on commit or rollback.
func (r *Repo) AcquireUserLock(ctx context.Context, categoryID, userID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, acquireUserLockSQL, categoryID, userID); err != nil {
		return fmt.Errorf("acquire nomination lock: %w", err)
	}

	return nil
}

// Insert records a nomination fact.
// Returns domain.ErrAlreadyNominated when the (category, game, user)
// triple already exists.
func (r *Repo) Insert(ctx context.Context, categoryID, gameID, userID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, insertSQL, categoryID, gameID, userID); err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("nomination (%d,%d,%d): %w", categoryID, gameID, userID, domain.ErrAlreadyNominated)
		}
		return postgres.MapError(err, "nomination", categoryID)
	}

	return nil
}

// Delete removes a nomination fact.
// Returns domain.ErrNotFound when no such row exists.
func (r *Repo) Delete(ctx context.Context, categoryID, gameID, userID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, categoryID, gameID, userID)
	if err != nil {
		return postgres.MapError(err, "nomination", categoryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("nomination (%d,%d,%d): %w", categoryID, gameID, userID, domain.ErrNotFound)
	}

	return nil
}

// CountForUser returns the number of live nominations a user holds in a
// category. Called inside the Add transaction for the quota check.
func (r *Repo) CountForUser(ctx context.Context, categoryID, userID int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countForUserSQL, categoryID, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count nominations: %w", err)
	}

	return count, nil
}

// ListGameIDsForUser returns the games a user has nominated in a category,
// oldest first. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListGameIDsForUser(ctx context.Context, categoryID, userID int64) ([]int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listGameIDsForUserSQL, categoryID, userID)
	if err != nil {
		return nil, fmt.Errorf("list user nominations: %w", err)
	}
	defer rows.Close()

	result := []int64{}
	for rows.Next() {
		var gameID int64
		if err := rows.Scan(&gameID); err != nil {
			return nil, fmt.Errorf("scan nomination: %w", err)
		}
		result = append(result, gameID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list user nominations: %w", err)
	}

	return result, nil
}

// CountByCategory returns the total number of nomination rows in a
// category, across all users and games.
func (r *Repo) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByCategorySQL, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count category nominations: %w", err)
	}

	return count, nil
}

// TopGames returns the category's games ranked by nomination count
// descending, ties broken by game id ascending, limited to `limit` rows.
// Row count equals distinct-user count because of the unique index.
// This is the finalist derivation query; always computed fresh, never
// persisted.
func (r *Repo) TopGames(ctx context.Context, categoryID int64, limit int) ([]domain.Finalist, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, topGamesSQL, categoryID, limit)
	if err != nil {
		return nil, fmt.Errorf("top games: %w", err)
	}
	defer rows.Close()

	result := []domain.Finalist{}
	for rows.Next() {
		var f domain.Finalist
		if err := rows.Scan(&f.GameID, &f.NominationCount); err != nil {
			return nil, fmt.Errorf("scan finalist: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top games: %w", err)
	}

	return result, nil
}
