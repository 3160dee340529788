// internal/cache/codec_test.go
package cache

import (
	"testing"

	engine "github.com/nordklondike/klondike/engine"
	"github.com/nordklondike/klondike/service/internal/entropy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeed() entropy.Seed {
	var s entropy.Seed
	for i := range s {
		s[i] = byte(i * 13)
	}
	return s
}

// testTable puts a few cards from the seed's deck on the table in mixed
// visibility states.
func testTable(t *testing.T) (entropy.Seed, *engine.Table) {
	t.Helper()
	seed := testSeed()
	deck, err := entropy.Deck(seed)
	require.NoError(t, err)
	table := engine.NewTable(deck)
	table.Tableau[6].MustPush(deck.At(0))
	table.Tableau[6].MustPush(deck.At(1).FlipUp())
	table.Stock.MustPush(deck.At(2))
	table.Waste.MustPush(deck.At(3).FlipUp().FlipDown())
	table.Foundations[2].MustPush(deck.At(4).FlipUp())
	return seed, table
}

func TestTableSnapshotRestores(t *testing.T) {
	seed, table := testTable(t)
	b := EncodeTable(seed, table)

	gotSeed, got, err := DecodeTable(b)
	require.NoError(t, err)
	assert.Equal(t, seed, gotSeed)
	assert.Equal(t, table.Deck, got.Deck)

	want, have := table.Piles(), got.Piles()
	for i := range want {
		assert.Equal(t, want[i].GoString(), have[i].GoString(), want[i].Name())
	}
}

func TestDecodeTableRejects(t *testing.T) {
	seed, table := testTable(t)
	good := EncodeTable(seed, table)

	// Offset of the first stock card word: version, seed, stock count.
	stockCard := 1 + entropy.SeedSize + 1

	tests := []struct {
		name   string
		mutate func([]byte) []byte
	}{
		{"empty", func([]byte) []byte { return nil }},
		{"bad version", func(b []byte) []byte { b[0] = 9; return b }},
		{"truncated", func(b []byte) []byte { return b[:len(b)-1] }},
		{"trailing", func(b []byte) []byte { return append(b, 0) }},
		{"over capacity", func(b []byte) []byte { b[1+entropy.SeedSize] = 200; return b }},
		{"invalid id", func(b []byte) []byte { b[stockCard] |= 0xFC; return b }},
		{"wrong suit", func(b []byte) []byte { b[stockCard+1] ^= 0b001; return b }},
		{"face up unrevealed", func(b []byte) []byte { b[stockCard] |= 0b10; return b }},
		{"duplicate", func(b []byte) []byte {
			// Waste card word follows the stock's; overwrite it with the stock card.
			waste := stockCard + 2 + 1
			b[waste], b[waste+1] = b[stockCard], b[stockCard+1]
			return b
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.mutate(append([]byte(nil), good...))
			_, _, err := DecodeTable(b)
			assert.ErrorIs(t, err, ErrCorruptSnapshot)
		})
	}
}
