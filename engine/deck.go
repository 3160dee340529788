package engine

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ShuffledDeck holds the 52 cards of one game in id order: the card at
// position n has ID n. The suit and rank behind each id are random.
// It is a value type and is never mutated after construction; higher layers
// move cards around by id.
type ShuffledDeck struct {
	cards [DeckSize]Card
}

// NewShuffledDeck shuffles the ids 0..51 with rng, hands them out to the
// suits × ranks in declaration order, and sorts the result by id. The only
// failure is the random source failing.
func NewShuffledDeck(rng RNG) (ShuffledDeck, error) {
	var ids [DeckSize]CardID
	for i := range ids {
		ids[i] = CardID(i)
	}

	// Fisher-Yates shuffle.
	for i := len(ids) - 1; i > 0; i-- {
		j, err := rng.IntN(i + 1)
		if err != nil {
			return ShuffledDeck{}, fmt.Errorf("%w: %w", ErrRandomness, err)
		}
		ids[i], ids[j] = ids[j], ids[i]
	}

	var d ShuffledDeck
	n := 0
	for _, color := range Suits {
		for _, rank := range Ranks {
			d.cards[n] = NewCard(color, rank, ids[n])
			n++
		}
	}

	slices.SortFunc(d.cards[:], func(a, b Card) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return d, nil
}

// Len always returns DeckSize.
func (d ShuffledDeck) Len() int { return len(d.cards) }

// At returns the card at position i, which is the card with ID i.
func (d ShuffledDeck) At(i int) Card { return d.cards[i] }

// Card looks a card up by id. ok is false for InvalidCardID.
func (d ShuffledDeck) Card(id CardID) (c Card, ok bool) {
	if !id.IsValid() {
		return 0, false
	}
	return d.cards[id], true
}

// All iterates the deck in id order.
func (d ShuffledDeck) All() iter.Seq2[CardID, Card] {
	return func(yield func(CardID, Card) bool) {
		for i, c := range d.cards {
			if !yield(CardID(i), c) {
				return
			}
		}
	}
}

// Redact returns the client view of every card in the deck.
func (d ShuffledDeck) Redact() WireDeck {
	var w WireDeck
	for i, c := range d.cards {
		w.cards[i] = Redact(c)
	}
	return w
}

func (d ShuffledDeck) String() string { return joinCards(d.cards[:], Card.String) }
func (d ShuffledDeck) GoString() string { return joinCards(d.cards[:], Card.GoString) }

// WireDeck is a ShuffledDeck as a client may see it.
type WireDeck struct {
	cards [DeckSize]WireCard
}

func (w WireDeck) Len() int { return len(w.cards) }
func (w WireDeck) At(i int) WireCard { return w.cards[i] }
func (w WireDeck) String() string { return joinCards(w.cards[:], WireCard.String) }
func (w WireDeck) GoString() string { return joinCards(w.cards[:], WireCard.GoString) }

func joinCards[T any](cards []T, render func(T) string) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = render(c)
	}
	return strings.Join(parts, " ")
}
