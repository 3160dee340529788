// Package engine implements the card model of a Klondike table.
//
// Cards are packed 16-bit words carrying suit, rank, visibility and a
// permanent id. The package builds the shuffled deck a game is dealt from,
// holds the fixed-capacity piles the cards are dealt into, and produces the
// redacted client view of all of it. Nothing here knows the rules of play.
package engine

import "strconv"

// NumPiles is the number of playing piles on a table: stock, waste, the
// foundations and the tableau columns.
const NumPiles = 2 + NumFoundations + NumTableau

// Table owns one game's deck and every pile cards are dealt into.
type Table struct {
	Deck        ShuffledDeck
	Stock       Pile[Card]
	Waste       Pile[Card]
	Foundations [NumFoundations]Pile[Card]
	Tableau     [NumTableau]Pile[Card]
}

// NewTable returns a table with deck and all piles empty.
func NewTable(deck ShuffledDeck) *Table {
	t := &Table{
		Deck:  deck,
		Stock: NewPile[Card]("stock", StockCapacity),
		Waste: NewPile[Card]("waste", WasteCapacity),
	}
	for i := range t.Foundations {
		t.Foundations[i] = NewPile[Card]("foundation "+strconv.Itoa(i), FoundationCapacity)
	}
	for i := range t.Tableau {
		t.Tableau[i] = NewPile[Card]("tableau "+strconv.Itoa(i), TableauCapacity)
	}
	return t
}

// Piles returns the playing piles in a fixed order: stock, waste,
// foundations 0-3, tableau 0-6.
func (t *Table) Piles() []*Pile[Card] {
	piles := make([]*Pile[Card], 0, NumPiles)
	piles = append(piles, &t.Stock, &t.Waste)
	for i := range t.Foundations {
		piles = append(piles, &t.Foundations[i])
	}
	for i := range t.Tableau {
		piles = append(piles, &t.Tableau[i])
	}
	return piles
}

// Redact returns the client view of every playing pile.
func (t *Table) Redact() *WireTable {
	w := &WireTable{
		Stock: mapPile(&t.Stock, Redact),
		Waste: mapPile(&t.Waste, Redact),
	}
	for i := range t.Foundations {
		w.Foundations[i] = mapPile(&t.Foundations[i], Redact)
	}
	for i := range t.Tableau {
		w.Tableau[i] = mapPile(&t.Tableau[i], Redact)
	}
	return w
}

// WireTable is the playing area as a client may see it. It holds copies; it
// has no link back to the Table it came from.
type WireTable struct {
	Stock       Pile[WireCard]
	Waste       Pile[WireCard]
	Foundations [NumFoundations]Pile[WireCard]
	Tableau     [NumTableau]Pile[WireCard]
}

// Piles returns the piles in the same order as Table.Piles.
func (w *WireTable) Piles() []*Pile[WireCard] {
	piles := make([]*Pile[WireCard], 0, NumPiles)
	piles = append(piles, &w.Stock, &w.Waste)
	for i := range w.Foundations {
		piles = append(piles, &w.Foundations[i])
	}
	for i := range w.Tableau {
		piles = append(piles, &w.Tableau[i])
	}
	return piles
}
