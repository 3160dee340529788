package engine

// Color is a card suit packed into 3 bits.
//
// Bit 2 marks a known suit and bit 0 marks a red one, so redness can be read
// off the encoding without naming the suit. The all-zero pattern is Unknown.
type Color uint8

const (
	ColorUnknown Color = 0b000
	Spades       Color = 0b100 // ♠
	Hearts       Color = 0b101 // ♥
	Clubs        Color = 0b110 // ♣
	Diamonds     Color = 0b111 // ♦
)

const (
	colorKnownBit = 0b100
	colorRedBit   = 0b001
)

// Suits lists the four known suits in declaration order.
var Suits = [4]Color{Spades, Hearts, Clubs, Diamonds}

// Bits returns the 3-bit encoding of c.
func (c Color) Bits() uint8 { return uint8(ColorFromBits(uint8(c))) }

// ColorFromBits decodes a 3-bit pattern. Anything that is not one of the five
// defined encodings decodes to ColorUnknown.
func ColorFromBits(b uint8) Color {
	switch Color(b) {
	case Spades, Hearts, Clubs, Diamonds:
		return Color(b)
	default:
		return ColorUnknown
	}
}

// IsKnown reports whether c is a real suit.
func (c Color) IsKnown() bool { return c.Bits()&colorKnownBit != 0 }

// IsRed reports whether c is a red suit. ok is false for ColorUnknown, where
// the color of the card cannot be told.
func (c Color) IsRed() (red, ok bool) {
	b := c.Bits()
	if b == 0 {
		return false, false
	}
	return b&colorRedBit != 0, true
}

func (c Color) String() string {
	switch c.Bits() {
	case uint8(Spades):
		return "♠"
	case uint8(Hearts):
		return "♥"
	case uint8(Clubs):
		return "♣"
	case uint8(Diamonds):
		return "♦"
	}
	return "?"
}
