package engine

import "strconv"

// Rank is a card's face value packed into 5 bits. Known ranks occupy the
// contiguous range 0b10000 (A) through 0b11100 (K); zero is Unknown.
type Rank uint8

const (
	RankUnknown Rank = 0
	Ace         Rank = 0b10000 + iota - 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists the thirteen known ranks in declaration order.
var Ranks = [13]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Bits returns the 5-bit encoding of r.
func (r Rank) Bits() uint8 { return uint8(RankFromBits(uint8(r))) }

// RankFromBits decodes a 5-bit pattern, falling back to RankUnknown for
// anything outside the A..K range.
func RankFromBits(b uint8) Rank {
	if b < uint8(Ace) || b > uint8(King) {
		return RankUnknown
	}
	return Rank(b)
}

// IsKnown reports whether r is a real rank.
func (r Rank) IsKnown() bool { return r.Bits() != 0 }

// Value returns the pip value 1..13, or 0 for RankUnknown.
func (r Rank) Value() int {
	if !r.IsKnown() {
		return 0
	}
	return int(r.Bits()-uint8(Ace)) + 1
}

func (r Rank) String() string {
	switch v := r.Value(); v {
	case 0:
		return "?"
	case 1:
		return "A"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	default:
		return strconv.Itoa(v)
	}
}
