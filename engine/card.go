package engine

import "strconv"

// CardID identifies a card by the position it held in the deck right after
// shuffling. It never changes for the life of the card and is not secret.
type CardID uint8

// InvalidCardID is what any out-of-range id decodes to.
const InvalidCardID CardID = 0b11111111

// CardIDFromBits decodes an id. Values 0..51 pass through; everything else,
// including bytes that arrived from a misbehaving client, becomes
// InvalidCardID. Callers check IsValid afterwards.
func CardIDFromBits(b uint8) CardID {
	if b >= DeckSize {
		return InvalidCardID
	}
	return CardID(b)
}

// Bits returns the raw id byte.
func (id CardID) Bits() uint8 { return uint8(id) }

// IsValid reports whether id is anything other than InvalidCardID.
func (id CardID) IsValid() bool { return id != InvalidCardID }

func (id CardID) String() string {
	if !id.IsValid() {
		return "invalid"
	}
	return strconv.Itoa(int(id))
}

// Card is the authoritative server-side card, packed into a 16-bit word.
// The layout is the wire format:
//
//	bits  0-2   color          (3 bits, see Color)
//	bits  3-7   rank           (5 bits, see Rank)
//	bit   8     ever revealed
//	bit   9     currently facing up
//	bits 10-15  id             (6 bits, all ones = invalid)
//
// A card must not face up unless it has been revealed. The packed word does
// not forbid the combination; FlipUp and FlipDown keep it, the raw With*
// builders do not.
type Card uint16

const (
	colorShift    = 0
	colorMask     = 0b111
	rankShift     = 3
	rankMask      = 0b11111
	revealedShift = 8
	facingShift   = 9
	idShift       = 10
	idMask        = 0b111111
)

// NewCard returns a face-down, never revealed card.
func NewCard(color Color, rank Rank, id CardID) Card {
	return Card(0).WithColor(color).WithRank(rank).WithID(id)
}

// CardFromBits reinterprets a packed word. Every field decodes totally.
func CardFromBits(b uint16) Card { return Card(b) }

// Bits returns the packed word.
func (c Card) Bits() uint16 { return uint16(c) }

func (c Card) Color() Color {
	return ColorFromBits(uint8(c>>colorShift) & colorMask)
}

func (c Card) Rank() Rank {
	return RankFromBits(uint8(c>>rankShift) & rankMask)
}

func (c Card) ID() CardID {
	return CardIDFromBits(uint8(c>>idShift) & idMask)
}

// EverRevealed reports whether the card has been shown at least once.
func (c Card) EverRevealed() bool { return c&(1<<revealedShift) != 0 }

// FacingUp reports whether the card currently lies face up.
func (c Card) FacingUp() bool { return c&(1<<facingShift) != 0 }

func (c Card) WithColor(color Color) Card {
	return c&^(colorMask<<colorShift) | Card(color.Bits())<<colorShift
}

func (c Card) WithRank(rank Rank) Card {
	return c&^(rankMask<<rankShift) | Card(rank.Bits())<<rankShift
}

func (c Card) WithID(id CardID) Card {
	return c&^(idMask<<idShift) | Card(id.Bits()&idMask)<<idShift
}

func (c Card) WithEverRevealed(v bool) Card { return c.withFlag(revealedShift, v) }

func (c Card) WithFacingUp(v bool) Card { return c.withFlag(facingShift, v) }

func (c Card) withFlag(shift uint, v bool) Card {
	if v {
		return c | 1<<shift
	}
	return c &^ (1 << shift)
}

// FlipUp turns the card face up, marking it revealed.
func (c Card) FlipUp() Card { return c.WithEverRevealed(true).WithFacingUp(true) }

// FlipDown turns the card face down. It stays revealed.
func (c Card) FlipDown() Card { return c.WithFacingUp(false) }

// Consistent reports whether the card obeys facing up ⟹ ever revealed.
func (c Card) Consistent() bool { return !c.FacingUp() || c.EverRevealed() }

// String renders the card as a player sees it: "♠A" face up, "(♠A)" when
// known but face down, and "*" for a card nobody has seen yet.
func (c Card) String() string {
	switch {
	case c.FacingUp():
		return c.Color().String() + c.Rank().String()
	case c.EverRevealed():
		return "(" + c.Color().String() + c.Rank().String() + ")"
	default:
		return "*"
	}
}

// GoString renders every field. It is meant for logs and tests on the server
// and must never be sent to a client.
func (c Card) GoString() string {
	return c.Color().String() + c.Rank().String() +
		"(" + c.ID().String() +
		"," + strconv.FormatBool(c.EverRevealed()) +
		"," + strconv.FormatBool(c.FacingUp()) + ")"
}
