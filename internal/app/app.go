// Package app wires configuration, storage, services, and the HTTP
// server together and owns the process lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/pixelaward/goty-backend/internal/auth"
	"github.com/pixelaward/goty-backend/internal/config"

	postgres "github.com/pixelaward/goty-backend/internal/adapter/postgres"
	categoryrepo "github.com/pixelaward/goty-backend/internal/adapter/postgres/category"
	gamerepo "github.com/pixelaward/goty-backend/internal/adapter/postgres/game"
	nominationrepo "github.com/pixelaward/goty-backend/internal/adapter/postgres/nomination"
	voterepo "github.com/pixelaward/goty-backend/internal/adapter/postgres/vote"

	"github.com/pixelaward/goty-backend/internal/service/finalist"
	"github.com/pixelaward/goty-backend/internal/service/nomination"
	"github.com/pixelaward/goty-backend/internal/service/phase"
	"github.com/pixelaward/goty-backend/internal/service/stats"
	"github.com/pixelaward/goty-backend/internal/service/tally"
	"github.com/pixelaward/goty-backend/internal/service/vote"

	"github.com/pixelaward/goty-backend/internal/transport/middleware"
	"github.com/pixelaward/goty-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to PostgreSQL, assembles the election services and the HTTP server,
// and blocks until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.Int("awards_year", cfg.Awards.Year),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	categories := categoryrepo.New(pool)
	games := gamerepo.New(pool)
	nominations := nominationrepo.New(pool)
	votes := voterepo.New(pool)

	phaseSvc := phase.NewService(logger, categories, txManager)
	nominationSvc := nomination.NewService(logger, categories, games, nominations, txManager)
	finalistSvc := finalist.NewService(logger, categories, nominations)
	voteSvc := vote.NewService(logger, categories, games, votes, finalistSvc, txManager)
	tallySvc := tally.NewService(logger, categories, votes, finalistSvc, txManager)
	statsSvc := stats.NewService(logger, categories, nominations, finalistSvc, tallySvc)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, 15*time.Minute)

	mux := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Category:   rest.NewCategoryHandler(categories, phaseSvc, logger),
		Nomination: rest.NewNominationHandler(nominationSvc, logger),
		Vote:       rest.NewVoteHandler(voteSvc, cfg.Awards.Year, logger),
		Tally:      rest.NewTallyHandler(finalistSvc, tallySvc, logger),
		Stats:      rest.NewStatsHandler(statsSvc, cfg.Awards.Year, logger),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		rateLimiter.Limit(120),
	)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
