// internal/database/games.go
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nordklondike/klondike/service/internal/entropy"
)

// ErrGameNotFound is returned when no record exists for a game id.
var ErrGameNotFound = errors.New("game record not found")

const gamesSchema = `
CREATE TABLE IF NOT EXISTS klondike_games (
	id         UUID PRIMARY KEY,
	seed       BYTEA NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

// GameRecord is what is persisted per game. The seed is enough to redeal the
// table exactly.
type GameRecord struct {
	ID        uuid.UUID
	Seed      entropy.Seed
	CreatedAt time.Time
}

// DB is the subset of pgxpool.Pool the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// GameRepository stores game records in Postgres.
type GameRepository struct {
	db DB
}

// NewGameRepository wraps db.
func NewGameRepository(db DB) *GameRepository {
	return &GameRepository{db: db}
}

// EnsureSchema creates the games table if it does not exist.
func (r *GameRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, gamesSchema); err != nil {
		return fmt.Errorf("create klondike_games: %w", err)
	}
	return nil
}

// Insert records a new game.
func (r *GameRepository) Insert(ctx context.Context, rec GameRecord) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO klondike_games (id, seed, created_at) VALUES ($1, $2, $3)`,
		rec.ID, rec.Seed[:], rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert game %s: %w", rec.ID, err)
	}
	return nil
}

// Get loads the record for id.
func (r *GameRepository) Get(ctx context.Context, id uuid.UUID) (GameRecord, error) {
	rec := GameRecord{ID: id}
	var seed []byte
	err := r.db.QueryRow(ctx,
		`SELECT seed, created_at FROM klondike_games WHERE id = $1`, id).
		Scan(&seed, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return GameRecord{}, ErrGameNotFound
	}
	if err != nil {
		return GameRecord{}, fmt.Errorf("get game %s: %w", id, err)
	}
	if len(seed) != entropy.SeedSize {
		return GameRecord{}, fmt.Errorf("game %s: stored seed has %d bytes", id, len(seed))
	}
	copy(rec.Seed[:], seed)
	return rec, nil
}
