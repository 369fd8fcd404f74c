package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, handler *adaptor.Handler, config *utils.Config) {
	// ==================== READ ROUTES ====================
	r.Get("/", handler.Page.Index)
	r.Get("/api/movies", handler.Movie.GetMovies)
	r.Get("/api/form", handler.Movie.GetFormState)

	// ==================== MUTATING ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(config.RateLimit))

		// HTML form posts, answered with a redirect to /
		r.Post("/movies", handler.Page.Submit)
		r.Post("/movies/{id}/delete", handler.Page.Remove)

		r.Post("/api/movies", handler.Movie.CreateMovie)
		r.Delete("/api/movies/{id}", handler.Movie.DeleteMovie)
	})
}
