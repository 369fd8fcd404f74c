package wire

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/storage"
	"movie-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, limit int) *App {
	t.Helper()

	config := &utils.Config{
		App:       utils.AppConfig{Name: "Movie catalog"},
		Catalog:   utils.CatalogConfig{StorageKey: "peliculas", BannerDuration: time.Hour},
		RateLimit: utils.RateLimitConfig{Requests: limit, Window: time.Minute},
	}
	repo := repository.NewRepository(storage.NewMemory(), config.Catalog.StorageKey, zap.NewNop())
	return Wiring(repo, config, zap.NewNop())
}

func TestWiring_Routes(t *testing.T) {
	app := newTestApp(t, 0)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{method: http.MethodGet, path: "/health", want: http.StatusOK},
		{method: http.MethodGet, path: "/", want: http.StatusOK},
		{method: http.MethodGet, path: "/api/movies", want: http.StatusOK},
		{method: http.MethodGet, path: "/api/form", want: http.StatusOK},
		{method: http.MethodPost, path: "/api/movies", body: `{}`, want: http.StatusBadRequest},
		{method: http.MethodDelete, path: "/api/movies/nope", want: http.StatusOK},
		{method: http.MethodPost, path: "/movies/nope/delete", want: http.StatusSeeOther},
		{method: http.MethodGet, path: "/metrics", want: http.StatusOK},
		{method: http.MethodPut, path: "/api/movies/nope", want: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			app.Router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestWiring_MetricsExposeCatalogCounters(t *testing.T) {
	app := newTestApp(t, 0)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/movies",
		strings.NewReader(`{"title":"Titanic","genre":"Drama","year":"1997-12-19","review":"Great film"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `movie_catalog_submissions_total{result="accepted"}`)
	assert.Contains(t, body, "movie_catalog_records")
}

func TestWiring_RateLimitsMutations(t *testing.T) {
	app := newTestApp(t, 1)

	post := func() int {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader(`{}`)))
		return rec.Code
	}

	assert.Equal(t, http.StatusBadRequest, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	// reads are not limited
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
