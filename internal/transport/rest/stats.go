package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pixelaward/goty-backend/internal/service/stats"
)

type statsService interface {
	Year(ctx context.Context, year int) (*stats.Overview, error)
	Category(ctx context.Context, categoryID int64) (*stats.CategoryBreakdown, error)
}

// StatsHandler serves the read-only aggregate endpoints.
type StatsHandler struct {
	svc         statsService
	defaultYear int
	log         *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, defaultYear int, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, defaultYear: defaultYear, log: logger.With("handler", "stats")}
}

type overviewResponse struct {
	Year       int `json:"year"`
	Total      int `json:"total"`
	Nominating int `json:"nominating"`
	Voting     int `json:"voting"`
	Closed     int `json:"closed"`
}

// Overview handles GET /api/v1/stats?year=2025.
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	year := h.defaultYear
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = y
	}

	overview, err := h.svc.Year(r.Context(), year)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, overviewResponse{
		Year:       overview.Year,
		Total:      overview.Total,
		Nominating: overview.Nominating,
		Voting:     overview.Voting,
		Closed:     overview.Closed,
	})
}

type finalistShareResponse struct {
	GameID          int64 `json:"gameId"`
	NominationCount int   `json:"nominationCount"`
	Percentage      int   `json:"percentage"`
}

type breakdownResponse struct {
	CategoryID       int64                   `json:"categoryId"`
	Phase            string                  `json:"phase"`
	TotalNominations int                     `json:"totalNominations"`
	Finalists        []finalistShareResponse `json:"finalists"`
	Tally            *tallyResponse          `json:"tally,omitempty"`
}

// Category handles GET /api/v1/categories/{id}/stats.
func (h *StatsHandler) Category(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	breakdown, err := h.svc.Category(r.Context(), categoryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := breakdownResponse{
		CategoryID:       breakdown.CategoryID,
		Phase:            breakdown.Phase.String(),
		TotalNominations: breakdown.TotalNominations,
		Finalists:        make([]finalistShareResponse, 0, len(breakdown.Finalists)),
	}
	for _, f := range breakdown.Finalists {
		out.Finalists = append(out.Finalists, finalistShareResponse{
			GameID:          f.GameID,
			NominationCount: f.NominationCount,
			Percentage:      f.Percentage,
		})
	}
	if t := breakdown.Tally; t != nil {
		tr := tallyResponse{
			CategoryID:       t.CategoryID,
			Phase:            t.Phase.String(),
			TotalVotes:       t.TotalVotes,
			Games:            make([]gameTallyResponse, 0, len(t.Games)),
			WinnerGameID:     t.WinnerGameID,
			WinnerDesignated: t.WinnerDesignated,
		}
		for _, g := range t.Games {
			tr.Games = append(tr.Games, gameTallyResponse{
				GameID:          g.GameID,
				NominationCount: g.NominationCount,
				VoteCount:       g.VoteCount,
				Percentage:      g.Percentage,
			})
		}
		out.Tally = &tr
	}

	writeJSON(w, http.StatusOK, out)
}
