package engine

import (
	"fmt"
	"iter"
)

// Pile capacities. Each is the most cards a slot can physically hold in
// Klondike.
const (
	DeckSize = 52

	// StockCapacity is what remains after the deal: 52 - (1+2+...+7).
	StockCapacity = DeckSize - 28
	// WasteCapacity matches the stock, since the waste only ever receives
	// cards drawn from it.
	WasteCapacity = StockCapacity
	// FoundationCapacity is one suit, A through K.
	FoundationCapacity = 13
	// TableauCapacity is the last column fully dealt: six face-down cards
	// under a complete K..A run.
	TableauCapacity = 6 + 13

	NumFoundations = 4
	NumTableau     = 7
)

// Renderable is what a Pile can hold: Card or WireCard.
type Renderable interface {
	Card | WireCard
	String() string
	GoString() string
}

// Pile is a bounded, ordered sequence of cards that only grows at the back.
// The zero value has no room; use NewPile.
type Pile[T Renderable] struct {
	name  string
	cards []T
}

// NewPile returns an empty pile that holds at most capacity cards.
func NewPile[T Renderable](name string, capacity int) Pile[T] {
	return Pile[T]{name: name, cards: make([]T, 0, capacity)}
}

// Name identifies the pile in errors and logs.
func (p *Pile[T]) Name() string { return p.name }

// Len returns the number of cards in the pile.
func (p *Pile[T]) Len() int { return len(p.cards) }

// Cap returns the fixed capacity of the pile.
func (p *Pile[T]) Cap() int { return cap(p.cards) }

// Push appends c at the back of the pile.
func (p *Pile[T]) Push(c T) error {
	if len(p.cards) == cap(p.cards) {
		return fmt.Errorf("%w: %s holds %d", ErrPileFull, p.name, cap(p.cards))
	}
	p.cards = append(p.cards, c)
	return nil
}

// MustPush is Push for callers that treat overflow as a broken invariant.
func (p *Pile[T]) MustPush(c T) {
	if err := p.Push(c); err != nil {
		panic(err)
	}
}

// At returns the card at position i, counting from the bottom of the pile.
func (p *Pile[T]) At(i int) T { return p.cards[i] }

// Top returns the last pushed card, or false if the pile is empty.
func (p *Pile[T]) Top() (T, bool) {
	if len(p.cards) == 0 {
		var zero T
		return zero, false
	}
	return p.cards[len(p.cards)-1], true
}

// All iterates the pile in push order. The sequence may be ranged over any
// number of times.
func (p *Pile[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range p.cards {
			if !yield(c) {
				return
			}
		}
	}
}

// String joins the player-facing rendering of each card with spaces.
func (p *Pile[T]) String() string {
	return joinCards(p.cards, func(c T) string { return c.String() })
}

// GoString joins the debug rendering of each card with spaces.
func (p *Pile[T]) GoString() string {
	return joinCards(p.cards, func(c T) string { return c.GoString() })
}

// mapPile copies src into a pile of the same name and capacity, converting
// each card.
func mapPile[S, D Renderable](src *Pile[S], conv func(S) D) Pile[D] {
	dst := NewPile[D](src.name, src.Cap())
	for c := range src.All() {
		dst.cards = append(dst.cards, conv(c))
	}
	return dst
}
