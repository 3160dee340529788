// internal/cache/redis.go
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	engine "github.com/nordklondike/klondike/engine"
	"github.com/nordklondike/klondike/service/internal/entropy"
	"github.com/redis/go-redis/v9"
)

// ErrSnapshotNotFound is returned when no snapshot is stored for a game.
var ErrSnapshotNotFound = errors.New("table snapshot not found")

// ConnectRedis creates a client and checks the server answers.
func ConnectRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

// SnapshotStore keeps the latest table of each game in Redis.
type SnapshotStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewSnapshotStore returns a store writing snapshots that expire after ttl.
// A zero ttl keeps them forever.
func NewSnapshotStore(rdb redis.Cmdable, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{rdb: rdb, ttl: ttl}
}

func snapshotKey(id uuid.UUID) string { return "klondike:table:" + id.String() }

// Save stores the table for game id.
func (s *SnapshotStore) Save(ctx context.Context, id uuid.UUID, seed entropy.Seed, t *engine.Table) error {
	if err := s.rdb.Set(ctx, snapshotKey(id), EncodeTable(seed, t), s.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot %s: %w", id, err)
	}
	return nil
}

// Load fetches and validates the table for game id.
func (s *SnapshotStore) Load(ctx context.Context, id uuid.UUID) (entropy.Seed, *engine.Table, error) {
	b, err := s.rdb.Get(ctx, snapshotKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entropy.Seed{}, nil, ErrSnapshotNotFound
	}
	if err != nil {
		return entropy.Seed{}, nil, fmt.Errorf("load snapshot %s: %w", id, err)
	}
	return DecodeTable(b)
}

// Delete removes the snapshot for game id.
func (s *SnapshotStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.rdb.Del(ctx, snapshotKey(id)).Err()
}
