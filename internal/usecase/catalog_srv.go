package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/metrics"
	"movie-catalog/pkg/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const defaultBannerDuration = 1500 * time.Millisecond

type CatalogService interface {
	// Validate reports every problem with the draft; empty means valid.
	Validate(draft request.MovieDraft) []string
	// Submit stores a valid draft as a new movie. Invalid drafts return *ValidationError.
	Submit(ctx context.Context, draft request.MovieDraft) (*response.MovieResponse, error)
	// Remove deletes the movie with id. Unknown ids are a no-op.
	Remove(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) []response.MovieResponse
	State(ctx context.Context) response.FormState
}

type catalogService struct {
	repo           *repository.Repository
	log            *zap.Logger
	validate       *validator.Validate
	now            func() time.Time
	bannerDuration time.Duration

	mu        sync.Mutex
	movies    []entity.Movie
	draft     request.MovieDraft
	errors    []string
	submitted bool
}

func NewCatalogService(
	repo *repository.Repository,
	config utils.CatalogConfig,
	log *zap.Logger,
) CatalogService {
	return newCatalogService(repo, config, log, time.Now)
}

func newCatalogService(
	repo *repository.Repository,
	config utils.CatalogConfig,
	log *zap.Logger,
	now func() time.Time,
) *catalogService {
	bannerDuration := config.BannerDuration
	if bannerDuration <= 0 {
		bannerDuration = defaultBannerDuration
	}

	s := &catalogService{
		repo:           repo,
		log:            log.With(zap.String("service", "catalog")),
		validate:       utils.NewValidator(now),
		now:            now,
		bannerDuration: bannerDuration,
	}

	s.movies = repo.Movie.Load(context.Background())
	metrics.Records.Set(float64(len(s.movies)))

	s.log.Info("Catalog loaded", zap.Int("count", len(s.movies)))
	return s
}

func (s *catalogService) Validate(draft request.MovieDraft) []string {
	return validateDraft(s.validate, draft, utils.MaxReleaseYear(s.now()))
}

func (s *catalogService) Submit(ctx context.Context, draft request.MovieDraft) (*response.MovieResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if messages := s.Validate(draft); len(messages) > 0 {
		s.draft = draft
		s.errors = messages
		metrics.SubmissionsTotal.WithLabelValues(metrics.ResultRejected).Inc()

		s.log.Info("Movie submission rejected", zap.Strings("errors", messages))
		return nil, &ValidationError{Messages: messages}
	}

	clean := draft.Trimmed()
	year, err := utils.ParseReleaseYear(clean.Year)
	if err != nil {
		return nil, fmt.Errorf("parse release year: %w", err)
	}

	movie := entity.Movie{
		ID:     s.newID(),
		Title:  clean.Title,
		Genre:  entity.Genre(clean.Genre),
		Year:   year,
		Review: clean.Review,
	}

	updated := append(slices.Clone(s.movies), movie)
	if err := s.repo.Movie.Save(ctx, updated); err != nil {
		s.draft = draft
		metrics.SubmissionsTotal.WithLabelValues(metrics.ResultFailed).Inc()

		s.log.Error("Failed to persist new movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.movies = updated
	s.draft = request.MovieDraft{}
	s.errors = nil
	s.raiseBanner()

	metrics.SubmissionsTotal.WithLabelValues(metrics.ResultAccepted).Inc()
	metrics.Records.Set(float64(len(s.movies)))

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID),
		zap.String("title", movie.Title),
		zap.Int("year", movie.Year),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *catalogService) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.movies, func(m entity.Movie) bool { return m.ID == id })
	if i == -1 {
		metrics.RemovalsTotal.WithLabelValues(metrics.ResultNotFound).Inc()
		s.log.Debug("Remove ignored, movie not found", zap.String("movie_id", id))
		return false, nil
	}

	removed := s.movies[i]
	updated := slices.Delete(slices.Clone(s.movies), i, i+1)
	if err := s.repo.Movie.Save(ctx, updated); err != nil {
		metrics.RemovalsTotal.WithLabelValues(metrics.ResultFailed).Inc()
		s.log.Error("Failed to persist movie removal",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return false, fmt.Errorf("delete movie: %w", err)
	}

	s.movies = updated
	metrics.RemovalsTotal.WithLabelValues(metrics.ResultRemoved).Inc()
	metrics.Records.Set(float64(len(s.movies)))

	s.log.Info("Movie deleted",
		zap.String("movie_id", id),
		zap.String("title", removed.Title),
	)
	return true, nil
}

func (s *catalogService) List(ctx context.Context) []response.MovieResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return response.MoviesToResponse(s.movies)
}

func (s *catalogService) State(ctx context.Context) response.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return response.FormState{
		Draft:     s.draft,
		Errors:    slices.Clone(s.errors),
		Submitted: s.submitted,
		Movies:    response.MoviesToResponse(s.movies),
	}
}

// raiseBanner shows the success banner until the timer fires. Timers are never
// cancelled; a later submission simply sets the flag again. Callers hold s.mu.
func (s *catalogService) raiseBanner() {
	s.submitted = true
	time.AfterFunc(s.bannerDuration, func() {
		s.mu.Lock()
		s.submitted = false
		s.mu.Unlock()
	})
}

// newID returns an id not already used in the collection. Callers hold s.mu.
func (s *catalogService) newID() string {
	for {
		id := utils.GenerateUUIDString()
		if !slices.ContainsFunc(s.movies, func(m entity.Movie) bool { return m.ID == id }) {
			return id
		}
	}
}
