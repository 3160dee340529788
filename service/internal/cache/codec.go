// internal/cache/codec.go
package cache

import (
	"encoding/binary"
	"errors"
	"fmt"

	engine "github.com/nordklondike/klondike/engine"
	"github.com/nordklondike/klondike/service/internal/entropy"
)

// snapshotVersion tags the layout below. Bump it on any change.
//
//	byte  0         version
//	bytes 1..32     seed
//	then, for each pile in Table.Piles order:
//	  byte          card count
//	  count × 2     packed card words, big endian
const snapshotVersion = 1

// ErrCorruptSnapshot is returned for snapshots that do not decode to a
// table the seed could have produced.
var ErrCorruptSnapshot = errors.New("corrupt table snapshot")

// EncodeTable serializes a table. The deck is not stored; it is rebuilt
// from the seed on decode.
func EncodeTable(seed entropy.Seed, t *engine.Table) []byte {
	out := make([]byte, 0, 1+entropy.SeedSize+engine.NumPiles+2*engine.DeckSize)
	out = append(out, snapshotVersion)
	out = append(out, seed[:]...)
	for _, p := range t.Piles() {
		out = append(out, byte(p.Len()))
		for c := range p.All() {
			out = binary.BigEndian.AppendUint16(out, c.Bits())
		}
	}
	return out
}

// DecodeTable rebuilds a table from a snapshot. Every card is checked
// against the deck dealt from the stored seed, and no id may appear twice.
func DecodeTable(b []byte) (entropy.Seed, *engine.Table, error) {
	var seed entropy.Seed
	if len(b) < 1+entropy.SeedSize {
		return seed, nil, fmt.Errorf("%w: %d bytes", ErrCorruptSnapshot, len(b))
	}
	if b[0] != snapshotVersion {
		return seed, nil, fmt.Errorf("%w: version %d", ErrCorruptSnapshot, b[0])
	}
	copy(seed[:], b[1:1+entropy.SeedSize])
	b = b[1+entropy.SeedSize:]

	deck, err := entropy.Deck(seed)
	if err != nil {
		return seed, nil, err
	}
	t := engine.NewTable(deck)

	var seen [engine.DeckSize]bool
	for _, p := range t.Piles() {
		if len(b) < 1 {
			return seed, nil, fmt.Errorf("%w: truncated before %s", ErrCorruptSnapshot, p.Name())
		}
		n := int(b[0])
		b = b[1:]
		if n > p.Cap() || len(b) < 2*n {
			return seed, nil, fmt.Errorf("%w: %s claims %d cards", ErrCorruptSnapshot, p.Name(), n)
		}
		for i := 0; i < n; i++ {
			c := engine.CardFromBits(binary.BigEndian.Uint16(b[2*i:]))
			if err := checkCard(deck, c, &seen); err != nil {
				return seed, nil, fmt.Errorf("%w: %s[%d]: %w", ErrCorruptSnapshot, p.Name(), i, err)
			}
			if err := p.Push(c); err != nil {
				return seed, nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
			}
		}
		b = b[2*n:]
	}
	if len(b) != 0 {
		return seed, nil, fmt.Errorf("%w: %d trailing bytes", ErrCorruptSnapshot, len(b))
	}
	return seed, t, nil
}

func checkCard(deck engine.ShuffledDeck, c engine.Card, seen *[engine.DeckSize]bool) error {
	orig, ok := deck.Card(c.ID())
	switch {
	case !ok:
		return errors.New("invalid card id")
	case seen[c.ID()]:
		return fmt.Errorf("card %d appears twice", c.ID())
	case orig.Color() != c.Color() || orig.Rank() != c.Rank():
		return fmt.Errorf("card %d does not match the deck", c.ID())
	case !c.Consistent():
		return fmt.Errorf("card %d faces up without being revealed", c.ID())
	}
	seen[c.ID()] = true
	return nil
}
