// internal/game/sync_state.go
package game

import (
	"github.com/google/uuid"
	engine "github.com/nordklondike/klondike/engine"
)

// ObfCard represents a card's state for client synchronization. It is built
// from an engine.WireCard only, so a card that was never revealed carries its
// id and nothing else.
type ObfCard struct {
	ID     int    `json:"id"`
	Known  bool   `json:"known"` // True once the card has been revealed.
	FaceUp bool   `json:"faceUp"`
	Suit   string `json:"suit,omitempty"`
	Rank   string `json:"rank,omitempty"`
	Text   string `json:"text"` // Player-facing rendering: "♠A", "(♠A)" or "*".
	Bits   uint16 `json:"bits"` // Packed wire word.
}

// ObfPile is one pile of the table in bottom-to-top order.
type ObfPile struct {
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	Cards    []ObfCard `json:"cards"`
}

// ObfTableState represents the whole table as any viewer may see it.
type ObfTableState struct {
	GameID      uuid.UUID `json:"gameId"`
	Stock       ObfPile   `json:"stock"`
	Waste       ObfPile   `json:"waste"`
	Foundations []ObfPile `json:"foundations"`
	Tableau     []ObfPile `json:"tableau"`
}

// NewObfTableState converts a redacted table into its JSON shape.
func NewObfTableState(gameID uuid.UUID, w *engine.WireTable) ObfTableState {
	obf := ObfTableState{
		GameID:      gameID,
		Stock:       newObfPile(&w.Stock),
		Waste:       newObfPile(&w.Waste),
		Foundations: make([]ObfPile, len(w.Foundations)),
		Tableau:     make([]ObfPile, len(w.Tableau)),
	}
	for i := range w.Foundations {
		obf.Foundations[i] = newObfPile(&w.Foundations[i])
	}
	for i := range w.Tableau {
		obf.Tableau[i] = newObfPile(&w.Tableau[i])
	}
	return obf
}

func newObfPile(p *engine.Pile[engine.WireCard]) ObfPile {
	op := ObfPile{
		Name:     p.Name(),
		Capacity: p.Cap(),
		Cards:    make([]ObfCard, 0, p.Len()),
	}
	for c := range p.All() {
		op.Cards = append(op.Cards, newObfCard(c))
	}
	return op
}

func newObfCard(c engine.WireCard) ObfCard {
	oc := ObfCard{
		ID:     int(c.ID()),
		Known:  c.EverRevealed(),
		FaceUp: c.FacingUp(),
		Text:   c.String(),
		Bits:   c.Bits(),
	}
	if oc.Known {
		oc.Suit = c.Color().String()
		oc.Rank = c.Rank().String()
	}
	return oc
}
