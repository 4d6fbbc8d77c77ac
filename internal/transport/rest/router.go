package rest

import "net/http"

// Handlers bundles the REST handlers the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Category   *CategoryHandler
	Nomination *NominationHandler
	Vote       *VoteHandler
	Tally      *TallyHandler
	Stats      *StatsHandler
}

// NewRouter mounts all REST routes on a fresh ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("GET /api/v1/categories", h.Category.List)
	mux.HandleFunc("POST /api/v1/categories", h.Category.Create)
	mux.HandleFunc("GET /api/v1/categories/{id}", h.Category.Get)
	mux.HandleFunc("POST /api/v1/categories/{id}/advance", h.Category.Advance)

	mux.HandleFunc("POST /api/v1/categories/{id}/nominations", h.Nomination.Add)
	mux.HandleFunc("DELETE /api/v1/categories/{id}/nominations/{gameID}", h.Nomination.Remove)
	mux.HandleFunc("GET /api/v1/categories/{id}/nominations/mine", h.Nomination.ListMine)

	mux.HandleFunc("GET /api/v1/categories/{id}/finalists", h.Tally.Finalists)

	mux.HandleFunc("PUT /api/v1/categories/{id}/vote", h.Vote.Cast)
	mux.HandleFunc("DELETE /api/v1/categories/{id}/vote", h.Vote.Remove)
	mux.HandleFunc("GET /api/v1/categories/{id}/vote", h.Vote.Mine)
	mux.HandleFunc("GET /api/v1/votes/mine", h.Vote.MineByYear)

	mux.HandleFunc("GET /api/v1/categories/{id}/tally", h.Tally.Tally)
	mux.HandleFunc("POST /api/v1/categories/{id}/winner", h.Tally.DesignateWinner)

	mux.HandleFunc("GET /api/v1/stats", h.Stats.Overview)
	mux.HandleFunc("GET /api/v1/categories/{id}/stats", h.Stats.Category)

	return mux
}
