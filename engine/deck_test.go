package engine

import (
	"errors"
	"testing"
)

// fixedRNG always answers n-1, which makes Fisher-Yates swap every element
// with itself and leaves the ids in canonical order.
type fixedRNG struct{}

func (fixedRNG) IntN(n int) (int, error) { return n - 1, nil }

// failingRNG fails after a number of successful draws.
type failingRNG struct {
	left int
}

var errEntropy = errors.New("entropy exhausted")

func (f *failingRNG) IntN(n int) (int, error) {
	if f.left == 0 {
		return 0, errEntropy
	}
	f.left--
	return 0, nil
}

func TestNewShuffledDeckInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		d, err := NewShuffledDeck(NewXorShift(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if d.Len() != DeckSize {
			t.Fatalf("Len() = %d, want %d", d.Len(), DeckSize)
		}

		seen := make(map[[2]uint8]bool)
		for i := 0; i < d.Len(); i++ {
			c := d.At(i)
			if int(c.ID()) != i {
				t.Fatalf("seed %d: deck[%d].ID() = %d", seed, i, c.ID())
			}
			if c.EverRevealed() || c.FacingUp() {
				t.Errorf("seed %d: deck[%d] = %#v is not hidden", seed, i, c)
			}
			key := [2]uint8{c.Color().Bits(), c.Rank().Bits()}
			if !c.Color().IsKnown() || !c.Rank().IsKnown() {
				t.Errorf("seed %d: deck[%d] has unknown suit or rank", seed, i)
			}
			if seen[key] {
				t.Errorf("seed %d: duplicate %v%v", seed, c.Color(), c.Rank())
			}
			seen[key] = true
		}
		if len(seen) != DeckSize {
			t.Errorf("seed %d: %d distinct cards, want %d", seed, len(seen), DeckSize)
		}
	}
}

// TestNewShuffledDeckCanonicalOrder verifies the id assignment follows the
// suits × ranks enumeration when the shuffle is the identity.
func TestNewShuffledDeckCanonicalOrder(t *testing.T) {
	d, err := NewShuffledDeck(fixedRNG{})
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for _, color := range Suits {
		for _, rank := range Ranks {
			c := d.At(n)
			if c.Color() != color || c.Rank() != rank {
				t.Errorf("deck[%d] = %#v, want %v%v", n, c, color, rank)
			}
			n++
		}
	}
}

// TestNewShuffledDeckNotGroupedBySuit verifies sorting by id does not put the
// suits back together: across many seeds, every suit shows up at id 0.
func TestNewShuffledDeckNotGroupedBySuit(t *testing.T) {
	counts := make(map[Color]int)
	const decks = 400
	for seed := uint64(1); seed <= decks; seed++ {
		d, err := NewShuffledDeck(NewXorShift(seed * 0x9E3779B97F4A7C15))
		if err != nil {
			t.Fatal(err)
		}
		counts[d.At(0).Color()]++
	}
	for _, color := range Suits {
		if counts[color] < decks/8 {
			t.Errorf("suit %v at id 0 only %d/%d times", color, counts[color], decks)
		}
	}
}

func TestNewShuffledDeckDeterministic(t *testing.T) {
	a, err := NewShuffledDeck(NewXorShift(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewShuffledDeck(NewXorShift(42))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("same seed produced different decks")
	}
}

func TestNewShuffledDeckRandomnessFailure(t *testing.T) {
	_, err := NewShuffledDeck(&failingRNG{left: 10})
	if !errors.Is(err, ErrRandomness) {
		t.Errorf("err = %v, want ErrRandomness", err)
	}
	if !errors.Is(err, errEntropy) {
		t.Errorf("err = %v, want wrapped source error", err)
	}
}

func TestShuffledDeckLookup(t *testing.T) {
	d, err := NewShuffledDeck(NewXorShift(7))
	if err != nil {
		t.Fatal(err)
	}
	for id, c := range d.All() {
		got, ok := d.Card(id)
		if !ok || got != c {
			t.Errorf("Card(%d) = %#v,%v want %#v", id, got, ok, c)
		}
	}
	if _, ok := d.Card(InvalidCardID); ok {
		t.Error("Card(InvalidCardID) reported ok")
	}
}

func TestShuffledDeckRedact(t *testing.T) {
	d, err := NewShuffledDeck(NewXorShift(3))
	if err != nil {
		t.Fatal(err)
	}
	w := d.Redact()
	if w.Len() != DeckSize {
		t.Fatalf("Len() = %d", w.Len())
	}
	for i := 0; i < w.Len(); i++ {
		if w.At(i).Color().IsKnown() || int(w.At(i).ID()) != i {
			t.Errorf("wire deck[%d] = %#v", i, w.At(i))
		}
	}
	if d.String() != w.String() {
		t.Error("hidden deck renders differently on the wire")
	}
}

// TestRevealScenario walks one card from hidden to revealed across the wire.
func TestRevealScenario(t *testing.T) {
	d, err := NewShuffledDeck(NewXorShift(2024))
	if err != nil {
		t.Fatal(err)
	}
	c, ok := d.Card(5)
	if !ok {
		t.Fatal("card 5 missing")
	}
	if c.EverRevealed() {
		t.Fatal("fresh card already revealed")
	}
	if got := Redact(c).String(); got != "*" {
		t.Errorf("hidden wire card renders %q", got)
	}

	shown := c.FlipUp()
	w := Redact(shown)
	if w.String() != shown.String() {
		t.Errorf("revealed wire card renders %q, want %q", w.String(), shown.String())
	}
	if want := c.Color().String() + c.Rank().String(); w.String() != want {
		t.Errorf("revealed wire card renders %q, want %q", w.String(), want)
	}
}

func TestXorShiftIntNRange(t *testing.T) {
	rng := NewXorShift(0)
	for n := 1; n <= DeckSize; n++ {
		for range 50 {
			v, err := rng.IntN(n)
			if err != nil {
				t.Fatal(err)
			}
			if v < 0 || v >= n {
				t.Fatalf("IntN(%d) = %d", n, v)
			}
		}
	}
}
