package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pixelaward/goty-backend/internal/domain"
	"github.com/pixelaward/goty-backend/internal/transport/middleware"
	"github.com/pixelaward/goty-backend/pkg/ctxutil"
)

type categoryRepo interface {
	GetByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	List(ctx context.Context, year *int, phase *domain.Phase) ([]domain.Category, error)
}

type phaseService interface {
	Advance(ctx context.Context, categoryID int64, target domain.Phase) (*domain.Category, error)
}

// CategoryHandler serves category catalog and phase-transition endpoints.
type CategoryHandler struct {
	categories categoryRepo
	phases     phaseService
	log        *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(categories categoryRepo, phases phaseService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		phases:     phases,
		log:        logger.With("handler", "category"),
	}
}

type categoryResponse struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	Phase     string    `json:"phase"`
	Sort      int       `json:"sort"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:        c.ID,
		Slug:      c.Slug,
		Name:      c.Name,
		Year:      c.Year,
		Phase:     c.Phase.String(),
		Sort:      c.Sort,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// List handles GET /api/v1/categories?year=2025&phase=VOTE.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	var year *int
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = &y
	}

	var phase *domain.Phase
	if v := r.URL.Query().Get("phase"); v != "" {
		p := domain.Phase(v)
		if !p.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid phase")
			return
		}
		phase = &p
	}

	categories, err := h.categories.List(r.Context(), year, phase)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	category, err := h.categories.GetByID(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

type createCategoryRequest struct {
	Name string `json:"name"`
	Year int    `json:"year"`
	Sort int    `json:"sort"`
}

// Create handles POST /api/v1/categories. The authenticated user
// becomes the category's author.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		handleError(h.log, w, r, domain.ErrUnauthorized)
		return
	}

	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Year == 0 {
		writeError(w, http.StatusBadRequest, "name and year are required")
		return
	}

	created, err := h.categories.Create(r.Context(), &domain.Category{
		Name:     req.Name,
		Year:     req.Year,
		Sort:     req.Sort,
		AuthorID: userID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(created))
}

type advanceRequest struct {
	Phase string `json:"phase"`
}

// Advance handles POST /api/v1/categories/{id}/advance. Admin only.
func (h *CategoryHandler) Advance(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.phases.Advance(r.Context(), id, domain.Phase(req.Phase))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}
