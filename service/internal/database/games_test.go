// internal/database/games_test.go
package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nordklondike/klondike/service/internal/entropy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow scans canned values or returns a canned error.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *[]byte:
			*p = r.values[i].([]byte)
		case *time.Time:
			*p = r.values[i].(time.Time)
		}
	}
	return nil
}

// fakeDB records Exec calls and answers QueryRow with row.
type fakeDB struct {
	execSQL  []string
	execArgs [][]any
	execErr  error
	row      fakeRow
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	f.execArgs = append(f.execArgs, args)
	return pgconn.CommandTag{}, f.execErr
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row { return f.row }

func TestInsertPassesSeedBytes(t *testing.T) {
	db := &fakeDB{}
	repo := NewGameRepository(db)
	rec := GameRecord{ID: uuid.New(), CreatedAt: time.Now()}
	rec.Seed[0] = 0xAB

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, repo.Insert(context.Background(), rec))
	require.Len(t, db.execArgs, 2)
	assert.Contains(t, db.execSQL[0], "CREATE TABLE IF NOT EXISTS klondike_games")
	args := db.execArgs[1]
	assert.Equal(t, rec.ID, args[0])
	assert.Equal(t, rec.Seed[:], args[1])
}

func TestInsertError(t *testing.T) {
	boom := errors.New("boom")
	repo := NewGameRepository(&fakeDB{execErr: boom})
	err := repo.Insert(context.Background(), GameRecord{ID: uuid.New()})
	assert.ErrorIs(t, err, boom)
}

func TestGet(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	seed := make([]byte, entropy.SeedSize)
	seed[31] = 7
	repo := NewGameRepository(&fakeDB{row: fakeRow{values: []any{seed, created}}})

	id := uuid.New()
	rec, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, created, rec.CreatedAt)
	assert.Equal(t, byte(7), rec.Seed[31])
}

func TestGetNotFound(t *testing.T) {
	repo := NewGameRepository(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}})
	_, err := repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestGetShortSeed(t *testing.T) {
	repo := NewGameRepository(&fakeDB{row: fakeRow{values: []any{[]byte{1, 2}, time.Now()}}})
	_, err := repo.Get(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrGameNotFound)
}
