package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixelaward/goty-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row and returns its generated ID.
func SeedUser(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()

	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO users (email, name) VALUES ($1, $2) RETURNING id`,
		"voter-"+suffix+"@example.com", "Voter "+suffix,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return id
}

// SeedUsers creates n users and returns their IDs.
func SeedUsers(t *testing.T, pool *pgxpool.Pool, n int) []int64 {
	t.Helper()
	ids := make([]int64, n)
	for i := range ids {
		ids[i] = SeedUser(t, pool)
	}
	return ids
}

// SeedGame creates a validated game for the given year and returns it.
func SeedGame(t *testing.T, pool *pgxpool.Pool, year int) domain.Game {
	t.Helper()
	return SeedGameWithStatus(t, pool, year, domain.GameStatusValidated, nil)
}

// SeedGameWithStatus creates a game with explicit status and category
// restriction list, and returns it.
func SeedGameWithStatus(t *testing.T, pool *pgxpool.Pool, year int, status domain.GameStatus, restricted []int64) domain.Game {
	t.Helper()
	ctx := context.Background()

	if restricted == nil {
		restricted = []int64{}
	}

	g := domain.Game{
		Title:                "Game " + uniqueSuffix(),
		Year:                 year,
		Status:               status,
		RestrictedCategories: restricted,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO games (title, year, status, restricted_categories)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		g.Title, g.Year, string(g.Status), restricted,
	).Scan(&g.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedGame: %v", err)
	}

	return g
}

// SeedCategory creates a category in the given phase and returns it.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, year int, phase domain.Phase) domain.Category {
	t.Helper()
	ctx := context.Background()

	authorID := SeedUser(t, pool)
	name := "Category " + uniqueSuffix()

	c := domain.Category{
		Slug:     domain.Slugify(name, year),
		Name:     name,
		Year:     year,
		Phase:    phase,
		AuthorID: authorID,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO categories (slug, name, year, phase, sort, author_id)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		c.Slug, c.Name, c.Year, string(c.Phase), c.Sort, c.AuthorID,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return c
}

// SeedNomination inserts a nomination row directly.
func SeedNomination(t *testing.T, pool *pgxpool.Pool, categoryID, gameID, userID int64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO nominations (category_id, game_id, user_id) VALUES ($1, $2, $3)`,
		categoryID, gameID, userID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNomination: %v", err)
	}
}

// SeedVote inserts a vote row directly.
func SeedVote(t *testing.T, pool *pgxpool.Pool, categoryID, userID, gameID int64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO votes (category_id, user_id, game_id) VALUES ($1, $2, $3)`,
		categoryID, userID, gameID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVote: %v", err)
	}
}
