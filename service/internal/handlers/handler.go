// internal/handlers/handler.go
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	engine "github.com/nordklondike/klondike/engine"
	"github.com/nordklondike/klondike/service/internal/auth"
	"github.com/nordklondike/klondike/service/internal/cache"
	"github.com/nordklondike/klondike/service/internal/database"
	"github.com/nordklondike/klondike/service/internal/entropy"
	"github.com/nordklondike/klondike/service/internal/game"
	"github.com/sirupsen/logrus"
)

const writeTimeout = 5 * time.Second

// SnapshotStore persists the latest table of a game.
type SnapshotStore interface {
	Save(ctx context.Context, id uuid.UUID, seed entropy.Seed, t *engine.Table) error
	Load(ctx context.Context, id uuid.UUID) (entropy.Seed, *engine.Table, error)
}

// GameRecords persists the seed each game was dealt from.
type GameRecords interface {
	Insert(ctx context.Context, rec database.GameRecord) error
	Get(ctx context.Context, id uuid.UUID) (database.GameRecord, error)
}

type Handler struct {
	games     *game.Registry
	tokens    *auth.TokenIssuer
	hub       *Hub
	snapshots SnapshotStore // optional
	records   GameRecords   // optional
	log       *logrus.Logger
}

// NewHandler wires the HTTP API. snapshots and records may be nil, in which
// case games only live in memory.
func NewHandler(games *game.Registry, tokens *auth.TokenIssuer, hub *Hub, snapshots SnapshotStore, records GameRecords, logger *logrus.Logger) *Handler {
	return &Handler{
		games:     games,
		tokens:    tokens,
		hub:       hub,
		snapshots: snapshots,
		records:   records,
		log:       logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.POST("/games", h.CreateGame)
	e.GET("/games/:id", h.GetGame)
	e.GET("/games/:id/sync", h.SyncGame)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// CreateGame deals a new table and returns a viewer token for it.
func (h *Handler) CreateGame(c echo.Context) error {
	ctx := c.Request().Context()
	g, err := h.games.Create()
	if err != nil {
		return h.mapError(c, err)
	}
	g.BroadcastFn = h.hub.Broadcaster(g.ID)

	if h.records != nil {
		rec := database.GameRecord{ID: g.ID, Seed: g.Seed, CreatedAt: g.CreatedAt}
		if err := h.records.Insert(ctx, rec); err != nil {
			h.games.Remove(g.ID)
			return h.mapError(c, err)
		}
	}
	h.saveSnapshot(ctx, g)

	token, err := h.tokens.Issue(g.ID)
	if err != nil {
		return h.mapError(c, err)
	}
	h.log.WithField("game_id", g.ID).Info("game created")
	return c.JSON(http.StatusCreated, CreateGameResponse{
		GameID: g.ID,
		Token:  token,
		State:  g.SyncState(),
	})
}

// GetGame returns the redacted table once.
func (h *Handler) GetGame(c echo.Context) error {
	g, err := h.authorize(c)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, g.SyncState())
}

// SyncGame upgrades to a WebSocket, sends the table, then forwards every
// event broadcast for the game until the client goes away.
func (h *Handler) SyncGame(c echo.Context) error {
	g, err := h.authorize(c)
	if err != nil {
		return h.mapError(c, err)
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		// Accept has already written the failure response.
		h.log.WithError(err).Debug("websocket accept failed")
		return nil
	}
	defer conn.CloseNow()

	v := h.hub.subscribe(g.ID)
	defer h.hub.unsubscribe(g.ID, v)

	ctx := conn.CloseRead(c.Request().Context())
	log := h.log.WithField("game_id", g.ID)

	state := g.SyncState()
	if err := h.write(ctx, conn, game.GameEvent{Type: game.EventPrivateSyncState, State: &state}); err != nil {
		log.WithError(err).Debug("initial sync failed")
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return nil
		case ev := <-v.send:
			if err := h.write(ctx, conn, ev); err != nil {
				log.WithError(err).Debug("viewer write failed")
				return nil
			}
		}
	}
}

func (h *Handler) write(ctx context.Context, conn *websocket.Conn, ev game.GameEvent) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, ev)
}

// authorize resolves the game in the path and checks the viewer token.
func (h *Handler) authorize(c echo.Context) (*game.KlondikeGame, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, game.ErrGameNotFound
	}
	if _, err := h.tokens.Verify(c.QueryParam("token"), id); err != nil {
		return nil, err
	}
	return h.lookup(c.Request().Context(), id)
}

// lookup finds a live game, or brings one back from storage: the seed from
// Postgres, and the latest table from Redis when a snapshot exists.
func (h *Handler) lookup(ctx context.Context, id uuid.UUID) (*game.KlondikeGame, error) {
	g, err := h.games.Get(id)
	if err == nil || h.records == nil {
		return g, err
	}

	rec, err := h.records.Get(ctx, id)
	if errors.Is(err, database.ErrGameNotFound) {
		return nil, game.ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}

	g, err = h.resume(ctx, rec)
	if err != nil {
		return nil, err
	}
	g.BroadcastFn = h.hub.Broadcaster(g.ID)
	h.games.Add(g)
	h.log.WithField("game_id", id).Info("game restored")
	return g, nil
}

func (h *Handler) resume(ctx context.Context, rec database.GameRecord) (*game.KlondikeGame, error) {
	if h.snapshots != nil {
		seed, table, err := h.snapshots.Load(ctx, rec.ID)
		switch {
		case err == nil && seed == rec.Seed:
			return game.ResumeGame(rec.ID, rec.Seed, rec.CreatedAt, table, h.log), nil
		case err == nil:
			h.log.WithField("game_id", rec.ID).Warn("snapshot seed mismatch, redealing")
		case !errors.Is(err, cache.ErrSnapshotNotFound):
			h.log.WithError(err).WithField("game_id", rec.ID).Warn("snapshot unusable, redealing")
		}
	}
	return game.RestoreGame(rec.ID, rec.Seed, rec.CreatedAt, h.log)
}

func (h *Handler) saveSnapshot(ctx context.Context, g *game.KlondikeGame) {
	if h.snapshots == nil {
		return
	}
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if err := h.snapshots.Save(ctx, g.ID, g.Seed, g.Table); err != nil {
		h.log.WithError(err).WithField("game_id", g.ID).Warn("snapshot not saved")
	}
}

func (h *Handler) mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid viewer token"})
	case errors.Is(err, engine.ErrRandomness):
		h.log.WithError(err).WithField("request_id", requestID).Error("no entropy for shuffle")
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "cannot shuffle right now"})
	default:
		h.log.WithError(err).WithField("request_id", requestID).Error("internal error")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
