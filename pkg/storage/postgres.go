package storage

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Postgres stores slots in the kv_slots table.
type Postgres struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgres(ctx context.Context, db database.PgxIface, log *zap.Logger) (*Postgres, error) {
	query := `
		CREATE TABLE IF NOT EXISTS kv_slots (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.Exec(ctx, query); err != nil {
		log.Error("Failed to create kv_slots table", zap.Error(err))
		return nil, fmt.Errorf("create kv_slots table: %w", err)
	}

	return &Postgres{
		db:  db,
		log: log.With(zap.String("repository", "kv_slots")),
	}, nil
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM kv_slots WHERE key = $1`

	var value string
	err := p.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		p.log.Error("Failed to read slot", zap.Error(err), zap.String("key", key))
		return "", false, fmt.Errorf("get slot %s: %w", key, err)
	}

	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := p.db.Exec(ctx, query, key, value); err != nil {
		p.log.Error("Failed to write slot", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("set slot %s: %w", key, err)
	}

	return nil
}

func (p *Postgres) Close() error {
	p.db.Close()
	return nil
}
