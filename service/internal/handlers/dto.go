// internal/handlers/dto.go
package handlers

import (
	"github.com/google/uuid"
	"github.com/nordklondike/klondike/service/internal/game"
)

// CreateGameResponse is the JSON shape returned by POST /games.
type CreateGameResponse struct {
	GameID uuid.UUID          `json:"gameId"`
	Token  string             `json:"token"`
	State  game.ObfTableState `json:"state"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
