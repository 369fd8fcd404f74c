package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/storage"

	"go.uber.org/zap"
)

// MovieRepository persists the whole catalog into one storage slot.
type MovieRepository interface {
	// Save overwrites the slot with the full collection.
	Save(ctx context.Context, movies []entity.Movie) error
	// Load never fails: an absent or corrupt slot yields an empty collection.
	Load(ctx context.Context) []entity.Movie
}

type movieRepository struct {
	kv  storage.KV
	key string
	log *zap.Logger
}

func NewMovieRepository(kv storage.KV, key string, log *zap.Logger) MovieRepository {
	return &movieRepository{
		kv:  kv,
		key: key,
		log: log.With(zap.String("repository", "movie"), zap.String("slot", key)),
	}
}

func (r *movieRepository) Save(ctx context.Context, movies []entity.Movie) error {
	if movies == nil {
		movies = []entity.Movie{}
	}

	data, err := json.Marshal(movies)
	if err != nil {
		return fmt.Errorf("encode movies: %w", err)
	}

	if err := r.kv.Set(ctx, r.key, string(data)); err != nil {
		r.log.Error("Failed to save movies",
			zap.Error(err),
			zap.Int("count", len(movies)),
		)
		return fmt.Errorf("save movies: %w", err)
	}

	r.log.Debug("Movies saved", zap.Int("count", len(movies)))
	return nil
}

func (r *movieRepository) Load(ctx context.Context) []entity.Movie {
	raw, found, err := r.kv.Get(ctx, r.key)
	if err != nil {
		r.log.Warn("Failed to read movies, starting empty", zap.Error(err))
		return []entity.Movie{}
	}
	if !found || raw == "" {
		return []entity.Movie{}
	}

	var movies []entity.Movie
	if err := json.Unmarshal([]byte(raw), &movies); err != nil {
		r.log.Warn("Stored movies are not valid JSON, starting empty", zap.Error(err))
		return []entity.Movie{}
	}
	if movies == nil {
		movies = []entity.Movie{}
	}

	return movies
}
