package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakePgx emulates the kv_slots table for the three statements Postgres issues.
type fakePgx struct {
	rows    map[string]string
	execErr error
	closed  bool
}

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.value
	return nil
}

func (f *fakePgx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	v, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func (f *fakePgx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	if strings.Contains(sql, "INSERT INTO kv_slots") {
		f.rows[args[0].(string)] = args[1].(string)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	}
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

func (f *fakePgx) Ping(ctx context.Context) error { return nil }
func (f *fakePgx) Close()                         { f.closed = true }

func TestPostgres(t *testing.T) {
	db := &fakePgx{rows: map[string]string{}}

	kv, err := NewPostgres(context.Background(), db, zap.NewNop())
	require.NoError(t, err)
	exerciseKV(t, kv)

	require.NoError(t, kv.Close())
	assert.True(t, db.closed)
}

func TestPostgres_SchemaError(t *testing.T) {
	db := &fakePgx{rows: map[string]string{}, execErr: errors.New("permission denied")}

	_, err := NewPostgres(context.Background(), db, zap.NewNop())
	assert.Error(t, err)
}
