// Command seed loads a minimal demo dataset: a handful of users, a game
// catalog for the year, and the standard category set in the nomination
// phase. It is intended for local development, not production.
//
// Usage:
//
//	seed --year=2025
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixelaward/goty-backend/internal/domain"
)

var categoryNames = []string{
	"Game of the Year",
	"Best Soundtrack",
	"Best Art Direction",
	"Best Narrative",
	"Best Indie",
}

var gameTitles = []string{
	"Starlight Drifter",
	"Iron Harvest Moon",
	"The Last Cartographer",
	"Neon Abyss Racing",
	"Gardens of Rust",
	"Clockwork Parade",
	"Echoes of the Deep",
	"Paper Kingdoms",
}

func main() {
	year := flag.Int("year", time.Now().Year(), "award year to seed")
	flag.Parse()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	for i := 1; i <= 5; i++ {
		_, err := pool.Exec(ctx,
			"INSERT INTO users (email, name) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING",
			fmt.Sprintf("demo-%d@example.com", i), fmt.Sprintf("Demo User %d", i),
		)
		if err != nil {
			log.Fatalf("seed user: %v", err)
		}
	}

	for _, title := range gameTitles {
		_, err := pool.Exec(ctx,
			"INSERT INTO games (title, year, status) VALUES ($1, $2, 'VALIDATED') ON CONFLICT DO NOTHING",
			title, *year,
		)
		if err != nil {
			log.Fatalf("seed game %q: %v", title, err)
		}
	}

	var authorID int64
	err = pool.QueryRow(ctx,
		"SELECT id FROM users WHERE email = 'demo-1@example.com'",
	).Scan(&authorID)
	if err != nil {
		log.Fatalf("look up seed author: %v", err)
	}

	for sort, name := range categoryNames {
		slug := domain.Slugify(name, *year)
		_, err := pool.Exec(ctx,
			`INSERT INTO categories (slug, name, year, phase, sort, author_id)
			 VALUES ($1, $2, $3, 'NOMINATION', $4, $5)
			 ON CONFLICT (name, year) DO NOTHING`,
			slug, name, *year, sort, authorID,
		)
		if err != nil {
			log.Fatalf("seed category %q: %v", name, err)
		}
	}

	fmt.Printf("Seeded %d users, %d games, %d categories for %d.\n",
		5, len(gameTitles), len(categoryNames), *year)
}
