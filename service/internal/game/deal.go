// internal/game/deal.go
package game

import (
	"errors"

	engine "github.com/nordklondike/klondike/engine"
)

// ErrAlreadyDealt is returned when Deal is called on a table that has cards
// on it.
var ErrAlreadyDealt = errors.New("table already dealt")

// Deal lays out a Klondike game. Cards are taken from the deck in id order
// and dealt row by row: row r puts one card on each of columns r..6, the
// first of them face up. The remaining 24 cards go to the stock face down.
func Deal(t *engine.Table) error {
	for _, p := range t.Piles() {
		if p.Len() > 0 {
			return ErrAlreadyDealt
		}
	}

	next := 0
	for row := 0; row < engine.NumTableau; row++ {
		for col := row; col < engine.NumTableau; col++ {
			card := t.Deck.At(next)
			next++
			if col == row {
				card = card.FlipUp()
			}
			t.Tableau[col].MustPush(card)
		}
	}
	for ; next < t.Deck.Len(); next++ {
		t.Stock.MustPush(t.Deck.At(next))
	}
	return nil
}
