package adaptor

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"unicode/utf8"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const reviewMaxLength = 50

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"runeCount": utf8.RuneCountInString,
	"cardClass": func(genre string) string {
		if entity.Genre(genre) == entity.GenreHorror {
			return "card--danger"
		}
		return "card--ok"
	},
}).ParseFS(templateFS, "templates/page.html"))

type pageData struct {
	Title     string
	Genres    []entity.Genre
	ReviewMax int
	response.FormState
}

// PageHandler renders the catalog form and list as server-side HTML.
type PageHandler struct {
	service usecase.CatalogService
	title   string
	log     *zap.Logger
}

func NewPageHandler(service usecase.CatalogService, title string, log *zap.Logger) *PageHandler {
	if title == "" {
		title = "Movie catalog"
	}
	return &PageHandler{
		service: service,
		title:   title,
		log:     log.With(zap.String("handler", "page")),
	}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:     h.title,
		Genres:    entity.Genres,
		ReviewMax: reviewMaxLength,
		FormState: h.service.State(r.Context()),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.log.Error("Failed to render page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Submit handles POST /movies from the HTML form.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	draft := request.MovieDraft{
		Title:  r.PostForm.Get("title"),
		Genre:  r.PostForm.Get("genre"),
		Year:   r.PostForm.Get("year"),
		Review: r.PostForm.Get("review"),
	}

	// validation problems are kept in the form state and shown on redirect
	_, err := h.service.Submit(r.Context(), draft)
	var verr *usecase.ValidationError
	if err != nil && !errors.As(err, &verr) {
		h.log.Error("Failed to submit movie", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Remove handles POST /movies/{id}/delete
func (h *PageHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.log.Error("Failed to remove movie", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
