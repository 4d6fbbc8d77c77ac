// Package category implements the category repository using PostgreSQL.
// It owns the category rows, the phase column every ledger write gates on,
// and the winners designation table.
package category

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/pixelaward/goty-backend/internal/adapter/postgres"
	"github.com/pixelaward/goty-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const categoryColumns = `id, slug, name, year, phase, sort, author_id, created_at, updated_at`

const getByIDSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE id = $1`

const phaseForShareSQL = `SELECT phase FROM categories WHERE id = $1 FOR SHARE`

const advancePhaseSQL = `
UPDATE categories
SET phase = $3, updated_at = now()
WHERE id = $1 AND phase = $2`

const insertSQL = `
INSERT INTO categories (slug, name, year, phase, sort, author_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + categoryColumns

const winnerSQL = `SELECT game_id FROM winners WHERE category_id = $1`

const designateWinnerSQL = `
INSERT INTO winners (category_id, game_id)
VALUES ($1, $2)
ON CONFLICT (category_id) DO UPDATE SET game_id = EXCLUDED.game_id`

const countByPhaseSQL = `
SELECT phase, count(*)
FROM categories
WHERE year = $1
GROUP BY phase`

// GetByID returns a category by primary key.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) GetByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Category
	err := querier.QueryRow(ctx, getByIDSQL, categoryID).Scan(
		&c.ID, &c.Slug, &c.Name, &c.Year, &c.Phase, &c.Sort, &c.AuthorID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "category", categoryID)
	}

	return &c, nil
}

// PhaseForShare reads the category's current phase and takes a FOR SHARE
// row lock. Inside a ledger-write transaction this pins the phase for the
// duration of the transaction: a concurrent AdvancePhase blocks until the
// ledger write commits, so no write slips through a transition.
func (r *Repo) PhaseForShare(ctx context.Context, categoryID int64) (domain.Phase, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var phase domain.Phase
	if err := querier.QueryRow(ctx, phaseForShareSQL, categoryID).Scan(&phase); err != nil {
		return "", postgres.MapError(err, "category", categoryID)
	}

	return phase, nil
}

// AdvancePhase moves a category from one phase to another with a
// conditional update. Returns false when the category was not in the
// expected `from` phase anymore (lost race or illegal transition);
// the caller decides how to report that.
func (r *Repo) AdvancePhase(ctx context.Context, categoryID int64, from, to domain.Phase) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, advancePhaseSQL, categoryID, from.String(), to.String())
	if err != nil {
		return false, postgres.MapError(err, "category", categoryID)
	}

	return tag.RowsAffected() == 1, nil
}

// Create inserts a new category with a slug derived from name + year.
// On slug collision a numeric suffix is appended ("-2", "-3", …).
// Returns domain.ErrAlreadyExists when (name, year) already exists.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	phase := c.Phase
	if phase == "" {
		phase = domain.PhaseNomination
	}

	base := domain.Slugify(c.Name, c.Year)
	slug := base
	for attempt := 2; ; attempt++ {
		var created domain.Category
		err := querier.QueryRow(ctx, insertSQL,
			slug, c.Name, c.Year, phase.String(), c.Sort, c.AuthorID,
		).Scan(
			&created.ID, &created.Slug, &created.Name, &created.Year, &created.Phase,
			&created.Sort, &created.AuthorID, &created.CreatedAt, &created.UpdatedAt,
		)
		if err == nil {
			return &created, nil
		}
		if postgres.IsUniqueViolation(err) {
			if isSlugViolation(err) && attempt <= 10 {
				slug = fmt.Sprintf("%s-%d", base, attempt)
				continue
			}
			return nil, fmt.Errorf("category %q year %d: %w", c.Name, c.Year, domain.ErrAlreadyExists)
		}
		return nil, postgres.MapError(err, "category", 0)
	}
}

// List returns categories filtered by the optional year and phase,
// ordered by sort then id.
func (r *Repo) List(ctx context.Context, year *int, phase *domain.Phase) ([]domain.Category, error) {
	builder := psql.
		Select("id", "slug", "name", "year", "phase", "sort", "author_id", "created_at", "updated_at").
		From("categories").
		OrderBy("sort ASC", "id ASC")

	if year != nil {
		builder = builder.Where(sq.Eq{"year": *year})
	}
	if phase != nil {
		builder = builder.Where(sq.Eq{"phase": phase.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(
			&c.ID, &c.Slug, &c.Name, &c.Year, &c.Phase, &c.Sort, &c.AuthorID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return result, nil
}

// CountByPhase returns the number of categories per phase for a year.
// Phases with no categories are absent from the map.
func (r *Repo) CountByPhase(ctx context.Context, year int) (map[domain.Phase]int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countByPhaseSQL, year)
	if err != nil {
		return nil, fmt.Errorf("count categories by phase: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Phase]int)
	for rows.Next() {
		var phase domain.Phase
		var n int
		if err := rows.Scan(&phase, &n); err != nil {
			return nil, fmt.Errorf("scan phase count: %w", err)
		}
		counts[phase] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count categories by phase: %w", err)
	}

	return counts, nil
}

// Winner returns the administratively designated winner game for a
// category. Returns domain.ErrNotFound when none has been designated.
func (r *Repo) Winner(ctx context.Context, categoryID int64) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var gameID int64
	if err := querier.QueryRow(ctx, winnerSQL, categoryID).Scan(&gameID); err != nil {
		return 0, postgres.MapError(err, "winner", categoryID)
	}

	return gameID, nil
}

// DesignateWinner records the explicit winner for a category, replacing
// any previous designation.
func (r *Repo) DesignateWinner(ctx context.Context, categoryID, gameID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, designateWinnerSQL, categoryID, gameID); err != nil {
		return postgres.MapError(err, "winner", categoryID)
	}

	return nil
}

func isSlugViolation(err error) bool {
	// The slug unique index is the only single-column unique constraint on
	// categories besides the (name, year) pair; constraint name is stable.
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == "categories_slug_key"
}
