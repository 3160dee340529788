// internal/handlers/hub.go
package handlers

import (
	"sync"

	"github.com/google/uuid"
	"github.com/nordklondike/klondike/service/internal/game"
	"github.com/sirupsen/logrus"
)

// viewerBuffer is how many events a slow viewer may fall behind before
// events to it are dropped.
const viewerBuffer = 16

type viewer struct {
	send chan game.GameEvent
}

// Hub fans game events out to the WebSocket viewers of each game.
type Hub struct {
	mu      sync.Mutex
	viewers map[uuid.UUID]map[*viewer]struct{}
	log     *logrus.Logger
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		viewers: make(map[uuid.UUID]map[*viewer]struct{}),
		log:     logger,
	}
}

// Broadcaster returns a game.BroadcastFn delivering to gameID's viewers.
// It never blocks the game.
func (h *Hub) Broadcaster(gameID uuid.UUID) func(game.GameEvent) {
	return func(ev game.GameEvent) {
		h.mu.Lock()
		defer h.mu.Unlock()
		for v := range h.viewers[gameID] {
			select {
			case v.send <- ev:
			default:
				h.log.WithFields(logrus.Fields{"game_id": gameID, "event": ev.Type}).
					Warn("viewer too slow, dropping event")
			}
		}
	}
}

func (h *Hub) subscribe(gameID uuid.UUID) *viewer {
	v := &viewer{send: make(chan game.GameEvent, viewerBuffer)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.viewers[gameID] == nil {
		h.viewers[gameID] = make(map[*viewer]struct{})
	}
	h.viewers[gameID][v] = struct{}{}
	return v
}

func (h *Hub) unsubscribe(gameID uuid.UUID, v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.viewers[gameID], v)
	if len(h.viewers[gameID]) == 0 {
		delete(h.viewers, gameID)
	}
}

// Viewers returns the number of live viewers of gameID.
func (h *Hub) Viewers(gameID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers[gameID])
}
