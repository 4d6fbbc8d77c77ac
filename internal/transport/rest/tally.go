package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pixelaward/goty-backend/internal/domain"
	"github.com/pixelaward/goty-backend/internal/transport/middleware"
)

type finalistService interface {
	Finalists(ctx context.Context, categoryID int64) ([]domain.Finalist, error)
}

type tallyService interface {
	Tally(ctx context.Context, categoryID int64) (*domain.TallyResult, error)
	DesignateWinner(ctx context.Context, categoryID, gameID int64) error
}

// TallyHandler serves the finalist and result endpoints.
type TallyHandler struct {
	finalists finalistService
	tallies   tallyService
	log       *slog.Logger
}

// NewTallyHandler creates a TallyHandler.
func NewTallyHandler(finalists finalistService, tallies tallyService, logger *slog.Logger) *TallyHandler {
	return &TallyHandler{
		finalists: finalists,
		tallies:   tallies,
		log:       logger.With("handler", "tally"),
	}
}

type finalistResponse struct {
	GameID          int64 `json:"gameId"`
	NominationCount int   `json:"nominationCount"`
}

// Finalists handles GET /api/v1/categories/{id}/finalists.
func (h *TallyHandler) Finalists(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	finalists, err := h.finalists.Finalists(r.Context(), categoryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]finalistResponse, 0, len(finalists))
	for _, f := range finalists {
		out = append(out, finalistResponse{GameID: f.GameID, NominationCount: f.NominationCount})
	}
	writeJSON(w, http.StatusOK, out)
}

type gameTallyResponse struct {
	GameID          int64 `json:"gameId"`
	NominationCount int   `json:"nominationCount"`
	VoteCount       int   `json:"voteCount"`
	Percentage      int   `json:"percentage"`
}

type tallyResponse struct {
	CategoryID       int64               `json:"categoryId"`
	Phase            string              `json:"phase"`
	TotalVotes       int                 `json:"totalVotes"`
	Games            []gameTallyResponse `json:"games"`
	WinnerGameID     int64               `json:"winnerGameId"`
	WinnerDesignated bool                `json:"winnerDesignated"`
}

// Tally handles GET /api/v1/categories/{id}/tally.
func (h *TallyHandler) Tally(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.tallies.Tally(r.Context(), categoryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := tallyResponse{
		CategoryID:       result.CategoryID,
		Phase:            result.Phase.String(),
		TotalVotes:       result.TotalVotes,
		Games:            make([]gameTallyResponse, 0, len(result.Games)),
		WinnerGameID:     result.WinnerGameID,
		WinnerDesignated: result.WinnerDesignated,
	}
	for _, g := range result.Games {
		out.Games = append(out.Games, gameTallyResponse{
			GameID:          g.GameID,
			NominationCount: g.NominationCount,
			VoteCount:       g.VoteCount,
			Percentage:      g.Percentage,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type designateWinnerRequest struct {
	GameID int64 `json:"gameId"`
}

// DesignateWinner handles POST /api/v1/categories/{id}/winner. Admin only.
func (h *TallyHandler) DesignateWinner(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	categoryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req designateWinnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.tallies.DesignateWinner(r.Context(), categoryID, req.GameID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"gameId": req.GameID})
}
