package engine

// WireCard is the client-facing projection of a Card. It shares the Card bit
// layout but a card that has never been revealed carries nothing except its
// id: color and rank are Unknown and it is never facing up.
//
// Redact is the only way to turn a Card into a WireCard.
type WireCard uint16

// Redact strips server-only secrets from c. A revealed card is already public
// to anyone at the table and is copied verbatim. The result depends on
// nothing but c itself; every observer gets the same view.
func Redact(c Card) WireCard {
	if c.EverRevealed() {
		return WireCard(c)
	}
	return WireCard(NewCard(ColorUnknown, RankUnknown, c.ID()))
}

// WireCardFromBits decodes an untrusted word. The redaction rule is applied
// again so a decoded WireCard is always well formed.
func WireCardFromBits(b uint16) WireCard { return Redact(Card(b)) }

// Bits returns the packed word sent over the wire.
func (w WireCard) Bits() uint16 { return uint16(w) }

func (w WireCard) Color() Color { return Card(w).Color() }
func (w WireCard) Rank() Rank { return Card(w).Rank() }
func (w WireCard) ID() CardID { return Card(w).ID() }
func (w WireCard) EverRevealed() bool { return Card(w).EverRevealed() }
func (w WireCard) FacingUp() bool { return Card(w).FacingUp() }
func (w WireCard) String() string { return Card(w).String() }
func (w WireCard) GoString() string { return Card(w).GoString() }
