// Package storage provides the key-value slots the catalog is persisted into.
package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendBadger   = "badger"
)

// KV is a minimal string key-value store. Get reports found=false for absent keys
// without an error.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open selects a backend from config.
func Open(config *utils.Config, log *zap.Logger) (KV, error) {
	cfg := config.Storage
	log = log.With(zap.String("storage", cfg.Backend))

	switch cfg.Backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile, "":
		return NewFile(cfg.Path)
	case BackendSQLite:
		return OpenSQLite(filepath.Join(cfg.Path, "catalog.sqlite"))
	case BackendPostgres:
		db, err := database.InitDB(config.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		store, err := NewPostgres(context.Background(), db, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		return store, nil
	case BackendRedis:
		return OpenRedis(config.Redis, log)
	case BackendBadger:
		return OpenBadger(filepath.Join(cfg.Path, "badger"))
	default:
		return nil, fmt.Errorf("unknown storage backend: %s (supported: memory, file, sqlite, postgres, redis, badger)", cfg.Backend)
	}
}
