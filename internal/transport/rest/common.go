// Package rest serves the JSON HTTP API over the election services.
// Handlers stay thin: decode, call the service, map domain errors to
// HTTP statuses.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pixelaward/goty-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// pathID parses a numeric path value. Returns 0 and writes 400 on garbage.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// handleError maps domain errors to HTTP statuses. Anything unmapped is
// an internal error: logged with the request context, hidden from the
// client.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":  "validation failed",
				"fields": ve.Errors,
			})
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyNominated):
		writeError(w, http.StatusConflict, "game already nominated")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "invalid phase transition")
	case errors.Is(err, domain.ErrPhaseTooEarly):
		writeError(w, http.StatusConflict, "phase has not started")
	case errors.Is(err, domain.ErrPhaseClosed):
		writeError(w, http.StatusConflict, "phase is closed")
	case errors.Is(err, domain.ErrQuotaExceeded):
		writeError(w, http.StatusUnprocessableEntity, "nomination quota exceeded")
	case errors.Is(err, domain.ErrGameNotEligible):
		writeError(w, http.StatusUnprocessableEntity, "game not eligible")
	case errors.Is(err, domain.ErrGameNotFinalist):
		writeError(w, http.StatusUnprocessableEntity, "game is not a finalist")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
