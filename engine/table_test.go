package engine

import "testing"

// TestTableRedact verifies the wire table mirrors every pile card by card and
// hides what was never shown.
func TestTableRedact(t *testing.T) {
	deck, err := NewShuffledDeck(NewXorShift(11))
	if err != nil {
		t.Fatal(err)
	}
	table := NewTable(deck)
	table.Tableau[0].MustPush(deck.At(0).FlipUp())
	table.Tableau[1].MustPush(deck.At(1))
	table.Tableau[1].MustPush(deck.At(2).FlipUp())
	table.Stock.MustPush(deck.At(3))
	table.Waste.MustPush(deck.At(4).FlipUp())

	wire := table.Redact()
	src, dst := table.Piles(), wire.Piles()
	if len(src) != len(dst) {
		t.Fatalf("pile count %d != %d", len(src), len(dst))
	}
	for i := range src {
		if src[i].Name() != dst[i].Name() || src[i].Cap() != dst[i].Cap() || src[i].Len() != dst[i].Len() {
			t.Fatalf("pile %d shape differs", i)
		}
		for j := 0; j < src[i].Len(); j++ {
			if Redact(src[i].At(j)) != dst[i].At(j) {
				t.Errorf("%s[%d] = %#v", dst[i].Name(), j, dst[i].At(j))
			}
		}
		if src[i].String() != dst[i].String() {
			t.Errorf("%s renders %q on the server but %q on the wire", src[i].Name(), src[i].String(), dst[i].String())
		}
	}
	if wire.Stock.At(0).Color().IsKnown() {
		t.Error("stock card leaked its suit")
	}

	// The wire table is a copy.
	table.Stock.MustPush(deck.At(5))
	if wire.Stock.Len() != 1 {
		t.Errorf("wire stock grew to %d", wire.Stock.Len())
	}
}
