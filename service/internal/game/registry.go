// internal/game/registry.go
package game

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/nordklondike/klondike/service/internal/entropy"
	"github.com/sirupsen/logrus"
)

// ErrGameNotFound is returned when no game with the requested id is live.
var ErrGameNotFound = errors.New("game not found")

// Registry holds the games currently served by this process.
type Registry struct {
	mu     sync.RWMutex
	games  map[uuid.UUID]*KlondikeGame
	logger *logrus.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(logger *logrus.Logger) *Registry {
	return &Registry{
		games:  make(map[uuid.UUID]*KlondikeGame),
		logger: logger,
	}
}

// Create deals a new game from a fresh OS seed and registers it.
func (r *Registry) Create() (*KlondikeGame, error) {
	seed, err := entropy.NewSeed()
	if err != nil {
		return nil, err
	}
	return r.CreateWithSeed(seed)
}

// CreateWithSeed deals a new game from seed and registers it.
func (r *Registry) CreateWithSeed(seed entropy.Seed) (*KlondikeGame, error) {
	g, err := NewKlondikeGame(seed, r.logger)
	if err != nil {
		return nil, err
	}
	r.Add(g)
	return g, nil
}

// Add registers an existing game, replacing any game with the same id.
func (r *Registry) Add(g *KlondikeGame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[g.ID] = g
}

// Get returns the game with id.
func (r *Registry) Get(id uuid.UUID) (*KlondikeGame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// Remove drops the game with id. Removing an unknown id is a no-op.
func (r *Registry) Remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, id)
}

// Len returns the number of live games.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
