package chess

// Leg is one piece's source and destination squares.
type Leg struct {
	Source      Position
	Destination Position
}

// Move is a primary leg plus, for castling only, the rook's leg.
type Move struct {
	Primary   Leg
	Secondary *Leg
}

// NewMove creates a single-leg move.
func NewMove(src, dst Position) Move {
	return Move{Primary: Leg{Source: src, Destination: dst}}
}

// NewCastlingMove creates a castling move from the king and rook legs.
func NewCastlingMove(kingSrc, kingDst, rookSrc, rookDst Position) Move {
	return Move{
		Primary:   Leg{Source: kingSrc, Destination: kingDst},
		Secondary: &Leg{Source: rookSrc, Destination: rookDst},
	}
}

// Source returns the primary source square.
func (m Move) Source() Position {
	return m.Primary.Source
}

// Destination returns the primary destination square.
func (m Move) Destination() Position {
	return m.Primary.Destination
}

// IsCastling returns true if the move carries a rook leg.
func (m Move) IsCastling() bool {
	return m.Secondary != nil
}

// String returns the move in long algebraic form, e.g. "e2e4" or
// "e1g1+h1f1" for castling.
func (m Move) String() string {
	s := m.Primary.Source.String() + m.Primary.Destination.String()
	if m.Secondary != nil {
		s += "+" + m.Secondary.Source.String() + m.Secondary.Destination.String()
	}
	return s
}
