package repository

import (
	"context"
	"errors"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingKV struct {
	getErr error
	setErr error
}

func (f failingKV) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, f.getErr
}

func (f failingKV) Set(ctx context.Context, key, value string) error { return f.setErr }
func (f failingKV) Close() error                                     { return nil }

func sampleMovies() []entity.Movie {
	return []entity.Movie{
		{ID: "a1", Title: "Titanic", Genre: entity.GenreDrama, Year: 1997, Review: "Great film"},
		{ID: "b2", Title: "Alien", Genre: entity.GenreScienceFiction, Year: 1979, Review: "In space no one can hear you scream"},
		{ID: "c3", Title: "Amélie", Genre: entity.GenreRomance, Year: 2001, Review: "Très charmant ♥"},
	}
}

func TestMovieRepository_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMovieRepository(storage.NewMemory(), "peliculas", zap.NewNop())

	movies := sampleMovies()
	require.NoError(t, repo.Save(ctx, movies))

	assert.Equal(t, movies, repo.Load(ctx))
}

func TestMovieRepository_SlotFormat(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	repo := NewMovieRepository(kv, "peliculas", zap.NewNop())

	require.NoError(t, repo.Save(ctx, sampleMovies()[:1]))

	raw, found, err := kv.Get(ctx, "peliculas")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t,
		`[{"id":"a1","titulo":"Titanic","genero":"Drama","anio":1997,"resena":"Great film"}]`,
		raw)
}

func TestMovieRepository_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewMovieRepository(storage.NewMemory(), "peliculas", zap.NewNop())

	require.NoError(t, repo.Save(ctx, sampleMovies()))
	require.NoError(t, repo.Save(ctx, sampleMovies()[2:]))

	assert.Equal(t, sampleMovies()[2:], repo.Load(ctx))

	require.NoError(t, repo.Save(ctx, nil))
	loaded := repo.Load(ctx)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestMovieRepository_LoadFailsSoft(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		kv   func() storage.KV
	}{
		{
			name: "absent slot",
			kv:   func() storage.KV { return storage.NewMemory() },
		},
		{
			name: "corrupt json",
			kv: func() storage.KV {
				kv := storage.NewMemory()
				_ = kv.Set(ctx, "peliculas", "{not json")
				return kv
			},
		},
		{
			name: "wrong shape",
			kv: func() storage.KV {
				kv := storage.NewMemory()
				_ = kv.Set(ctx, "peliculas", `{"id":"x"}`)
				return kv
			},
		},
		{
			name: "json null",
			kv: func() storage.KV {
				kv := storage.NewMemory()
				_ = kv.Set(ctx, "peliculas", `null`)
				return kv
			},
		},
		{
			name: "read error",
			kv:   func() storage.KV { return failingKV{getErr: errors.New("disk gone")} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMovieRepository(tt.kv(), "peliculas", zap.NewNop())
			movies := repo.Load(ctx)
			assert.NotNil(t, movies)
			assert.Empty(t, movies)
		})
	}
}

func TestMovieRepository_SaveError(t *testing.T) {
	boom := errors.New("read-only")
	repo := NewMovieRepository(failingKV{setErr: boom}, "peliculas", zap.NewNop())

	err := repo.Save(context.Background(), sampleMovies())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
