package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pixelaward/goty-backend/internal/service/vote"
)

type voteService interface {
	Cast(ctx context.Context, input vote.CastInput) error
	Remove(ctx context.Context, categoryID int64) error
	MyVote(ctx context.Context, categoryID int64) (*int64, error)
	MyVotedCategories(ctx context.Context, year int) ([]int64, error)
}

// VoteHandler serves the final-vote ledger endpoints.
type VoteHandler struct {
	svc         voteService
	defaultYear int
	log         *slog.Logger
}

// NewVoteHandler creates a VoteHandler.
func NewVoteHandler(svc voteService, defaultYear int, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{svc: svc, defaultYear: defaultYear, log: logger.With("handler", "vote")}
}

type castRequest struct {
	GameID int64 `json:"gameId"`
}

// Cast handles PUT /api/v1/categories/{id}/vote. A repeat cast replaces
// the previous vote.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req castRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.Cast(r.Context(), vote.CastInput{
		CategoryID: categoryID,
		GameID:     req.GameID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"gameId": req.GameID})
}

// Remove handles DELETE /api/v1/categories/{id}/vote.
func (h *VoteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Remove(r.Context(), categoryID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Mine handles GET /api/v1/categories/{id}/vote.
func (h *VoteHandler) Mine(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	gameID, err := h.svc.MyVote(r.Context(), categoryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]*int64{"gameId": gameID})
}

// MineByYear handles GET /api/v1/votes/mine?year=2025.
func (h *VoteHandler) MineByYear(w http.ResponseWriter, r *http.Request) {
	year := h.defaultYear
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = y
	}

	categoryIDs, err := h.svc.MyVotedCategories(r.Context(), year)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]int64{"categoryIds": categoryIDs})
}
