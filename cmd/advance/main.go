// Command advance moves every category of a year that sits in the given
// phase to its successor. It is intended to be invoked by an external
// scheduler when a nomination or voting window closes.
//
// Usage:
//
//	advance --year=2025 --from=NOMINATION
//
// Requires DATABASE_DSN environment variable to be set.
//
// Exit codes: 0 = success, 1 = error.
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

func main() {
	year := flag.Int("year", 0, "award year to advance")
	from := flag.String("from", "", "current phase (NOMINATION or VOTE)")
	flag.Parse()

	phase := domain.Phase(*from)
	next, ok := phase.Next()
	if *year == 0 || !ok {
		fmt.Fprintln(os.Stderr, "Usage: advance --year=2025 --from=NOMINATION")
		os.Exit(1)
	}

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

	tag, err := pool.Exec(ctx,
		"UPDATE categories SET phase = $1, updated_at = now() WHERE year = $2 AND phase = $3",
		next.String(), *year, phase.String(),
	)
	if err != nil {
		log.Fatalf("advance categories: %v", err)
	}

	fmt.Printf("Advanced %d categories of %d from %s to %s.\n",
		tag.RowsAffected(), *year, phase, next)
}
