//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/pixelaward/goty-backend/internal/adapter/postgres"
	categoryrepo "github.com/pixelaward/goty-backend/internal/adapter/postgres/category"
	gamerepo "github.com/pixelaward/goty-backend/internal/adapter/postgres/game"
	nominationrepo "github.com/pixelaward/goty-backend/internal/adapter/postgres/nomination"
	"github.com/pixelaward/goty-backend/internal/adapter/postgres/testhelper"
	voterepo "github.com/pixelaward/goty-backend/internal/adapter/postgres/vote"
	authpkg "github.com/pixelaward/goty-backend/internal/auth"
	"github.com/pixelaward/goty-backend/internal/config"
	"github.com/pixelaward/goty-backend/internal/domain"
	"github.com/pixelaward/goty-backend/internal/service/finalist"
	"github.com/pixelaward/goty-backend/internal/service/nomination"
	"github.com/pixelaward/goty-backend/internal/service/phase"
	"github.com/pixelaward/goty-backend/internal/service/stats"
	"github.com/pixelaward/goty-backend/internal/service/tally"
	"github.com/pixelaward/goty-backend/internal/service/vote"
	"github.com/pixelaward/goty-backend/internal/transport/middleware"
	"github.com/pixelaward/goty-backend/internal/transport/rest"
)

// awardYear is the fixed year the e2e server serves as its default.
const awardYear = 2025

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper), mirroring the wiring in
// internal/app.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
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

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	mux := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, "test-version"),
		Category:   rest.NewCategoryHandler(categories, phaseSvc, logger),
		Nomination: rest.NewNominationHandler(nominationSvc, logger),
		Vote:       rest.NewVoteHandler(voteSvc, awardYear, logger),
		Tally:      rest.NewTallyHandler(finalistSvc, tallySvc, logger),
		Stats:      rest.NewStatsHandler(statsSvc, awardYear, logger),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// createTestUserAndGetToken inserts a user directly into the DB and
// returns a valid JWT access token for that user plus the user's id.
func createTestUserAndGetToken(t *testing.T, ts *testServer) (string, int64) {
	t.Helper()

	userID := testhelper.SeedUser(t, ts.Pool)
	tok, err := ts.jwt.GenerateAccessToken(userID, domain.UserRoleUser)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return tok, userID
}

// createTestAdminAndGetToken is createTestUserAndGetToken with the
// admin role claim, for the phase-transition and winner endpoints.
func createTestAdminAndGetToken(t *testing.T, ts *testServer) (string, int64) {
	t.Helper()

	userID := testhelper.SeedUser(t, ts.Pool)
	tok, err := ts.jwt.GenerateAccessToken(userID, domain.UserRoleAdmin)
	if err != nil {
		t.Fatalf("generate admin token: %v", err)
	}
	return tok, userID
}

// doJSON sends a request with an optional JSON body and bearer token and
// returns the status code plus the decoded response body (nil for empty
// responses).
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	// Middleware rejections are plain text; only JSON bodies are decoded.
	if len(raw) == 0 || !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return resp.StatusCode, nil
	}

	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
	return resp.StatusCode, result
}

// doJSONList is doJSON for endpoints that return a JSON array.
func (ts *testServer) doJSONList(t *testing.T, method, path, token string, out *[]map[string]any) int {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	return resp.StatusCode
}

// errorMessage extracts the error string from an error body.
func errorMessage(t *testing.T, result map[string]any) string {
	t.Helper()
	msg, ok := result["error"].(string)
	if !ok {
		t.Fatalf("expected error string in response, got %v", result)
	}
	return msg
}

func categoryPath(categoryID int64, suffix string) string {
	return fmt.Sprintf("/api/v1/categories/%d%s", categoryID, suffix)
}
