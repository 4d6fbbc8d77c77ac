package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pixelaward/goty-backend/internal/service/nomination"
)

type nominationService interface {
	Add(ctx context.Context, input nomination.AddInput) (*nomination.Result, error)
	Remove(ctx context.Context, input nomination.RemoveInput) (*nomination.Result, error)
	ListMine(ctx context.Context, categoryID int64) ([]int64, error)
}

// NominationHandler serves the nomination ledger endpoints.
type NominationHandler struct {
	svc nominationService
	log *slog.Logger
}

// NewNominationHandler creates a NominationHandler.
func NewNominationHandler(svc nominationService, logger *slog.Logger) *NominationHandler {
	return &NominationHandler{svc: svc, log: logger.With("handler", "nomination")}
}

type nominateRequest struct {
	GameID int64 `json:"gameId"`
}

type nominationResult struct {
	Count int `json:"count"`
	Quota int `json:"quota"`
}

// Add handles POST /api/v1/categories/{id}/nominations.
func (h *NominationHandler) Add(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req nominateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Add(r.Context(), nomination.AddInput{
		CategoryID: categoryID,
		GameID:     req.GameID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, nominationResult{Count: result.Count, Quota: result.Quota})
}

// Remove handles DELETE /api/v1/categories/{id}/nominations/{gameID}.
func (h *NominationHandler) Remove(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	gameID, ok := pathID(w, r, "gameID")
	if !ok {
		return
	}

	result, err := h.svc.Remove(r.Context(), nomination.RemoveInput{
		CategoryID: categoryID,
		GameID:     gameID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nominationResult{Count: result.Count, Quota: result.Quota})
}

// ListMine handles GET /api/v1/categories/{id}/nominations/mine.
func (h *NominationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	gameIDs, err := h.svc.ListMine(r.Context(), categoryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]int64{"gameIds": gameIDs})
}
