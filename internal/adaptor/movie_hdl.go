package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.CatalogService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.List(r.Context()))
}

// GetFormState handles GET /api/form
func (h *MovieHandler) GetFormState(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.State(r.Context()))
}

// CreateMovie handles POST /api/movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieDraft
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.Submit(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// DeleteMovie handles DELETE /api/movies/{id}. Unknown ids still succeed.
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	removed, err := h.service.Remove(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	message := "Movie deleted successfully"
	if !removed {
		message = "Movie not found, nothing to delete"
	}
	utils.ResponseSuccess(w, message, nil)
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		h.log.Warn(operation+" validation failed",
			zap.Strings("errors", verr.Messages),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", verr.Messages)
		return
	}

	h.log.Error("Failed to "+operation,
		zap.Error(err),
		zap.String("operation", operation))
	utils.ResponseInternalError(w, "Internal server error")
}
