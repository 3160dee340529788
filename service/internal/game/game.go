// internal/game/game.go
package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	engine "github.com/nordklondike/klondike/engine"
	"github.com/nordklondike/klondike/service/internal/entropy"
	"github.com/sirupsen/logrus"
)

// GameEventType represents the type of a game-related event broadcast via WebSockets.
type GameEventType string

// Constants defining the GameEvent types used for WebSocket communication.
const (
	EventGameDealt        GameEventType = "game_dealt"         // Public: The table has been laid out.
	EventPrivateSyncState GameEventType = "private_sync_state" // Private: Full table state sync for one viewer.
)

// GameEvent is the standard structure for broadcasting table state changes.
type GameEvent struct {
	Type  GameEventType  `json:"type"`
	State *ObfTableState `json:"state,omitempty"` // Redacted table, the only card data that leaves the server.
}

// KlondikeGame represents the state of a single Klondike table.
type KlondikeGame struct {
	ID        uuid.UUID    // Unique identifier for this game instance.
	Seed      entropy.Seed // Secret the deck was derived from. Never sent to clients.
	CreatedAt time.Time

	// Table is the authoritative state, guarded by Mu.
	Table *engine.Table
	Mu    sync.Mutex

	// BroadcastFn sends an event to every viewer of the game.
	BroadcastFn func(ev GameEvent)

	log *logrus.Entry
}

// NewKlondikeGame shuffles a deck from seed and deals it.
func NewKlondikeGame(seed entropy.Seed, logger *logrus.Logger) (*KlondikeGame, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("game id: %w", err)
	}
	return RestoreGame(id, seed, time.Now().UTC(), logger)
}

// RestoreGame rebuilds and redeals a game from its persisted seed.
func RestoreGame(id uuid.UUID, seed entropy.Seed, createdAt time.Time, logger *logrus.Logger) (*KlondikeGame, error) {
	deck, err := entropy.Deck(seed)
	if err != nil {
		return nil, fmt.Errorf("shuffle deck for game %s: %w", id, err)
	}
	table := engine.NewTable(deck)
	if err := Deal(table); err != nil {
		return nil, err
	}

	g := ResumeGame(id, seed, createdAt, table, logger)
	g.log.WithField("stock", table.Stock.Len()).Debug("table dealt")
	return g, nil
}

// ResumeGame wraps a table that was restored from a snapshot.
func ResumeGame(id uuid.UUID, seed entropy.Seed, createdAt time.Time, table *engine.Table, logger *logrus.Logger) *KlondikeGame {
	return &KlondikeGame{
		ID:        id,
		Seed:      seed,
		CreatedAt: createdAt,
		Table:     table,
		log:       logger.WithField("game_id", id),
	}
}

// SyncState returns the redacted table as every viewer sees it.
func (g *KlondikeGame) SyncState() ObfTableState {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.syncStateLocked()
}

// syncStateLocked assumes Mu is held.
func (g *KlondikeGame) syncStateLocked() ObfTableState {
	return NewObfTableState(g.ID, g.Table.Redact())
}

// Broadcast pushes the current table to all viewers.
func (g *KlondikeGame) Broadcast(t GameEventType) {
	g.Mu.Lock()
	state := g.syncStateLocked()
	fn := g.BroadcastFn
	g.Mu.Unlock()

	if fn == nil {
		g.log.WithField("event", t).Debug("no broadcaster attached")
		return
	}
	fn(GameEvent{Type: t, State: &state})
}

// DebugString renders the full server-side table, hidden cards included.
// For logs and tests only.
func (g *KlondikeGame) DebugString() string {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	t := g.Table
	out := "deck: " + t.Deck.GoString()
	for _, p := range t.Piles() {
		out += "\n" + p.Name() + ": " + p.GoString()
	}
	return out
}
