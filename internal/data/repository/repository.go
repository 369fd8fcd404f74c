package repository

import (
	"movie-catalog/pkg/storage"

	"go.uber.org/zap"
)

type Repository struct {
	Movie MovieRepository
}

func NewRepository(kv storage.KV, key string, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMovieRepository(kv, key, log),
	}
}
