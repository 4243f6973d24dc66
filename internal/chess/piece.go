package chess

// Piece is a coloured piece together with its per-instance state.
// ShortCastle and LongCastle are meaningful for kings and rooks,
// DoubleStep for pawns.
type Piece struct {
	Kind        PieceKind
	Colour      Colour
	ShortCastle bool
	LongCastle  bool
	DoubleStep  bool
}

// NewPiece creates a piece that has not moved yet.
func NewPiece(kind PieceKind, colour Colour) Piece {
	castles := kind == King || kind == Rook
	return Piece{
		Kind:        kind,
		Colour:      colour,
		ShortCastle: castles,
		LongCastle:  castles,
		DoubleStep:  kind == Pawn,
	}
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return NewPiece(kind, White)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return NewPiece(kind, Black)
}

// IsEmpty returns true for the zero piece used on empty squares.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// Is returns true if the piece has the given kind and colour,
// regardless of its castling or double-step state.
func (p Piece) Is(kind PieceKind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour
}

// MarkMoved updates the piece state after it leaves from. A king loses
// both castling rights, a rook loses the right matching its home file
// and a pawn loses its double step.
func (p *Piece) MarkMoved(from Position) {
	switch p.Kind {
	case King:
		p.ShortCastle = false
		p.LongCastle = false
	case Rook:
		switch from.Col {
		case LongRookColumn:
			p.LongCastle = false
		case ShortRookColumn:
			p.ShortCastle = false
		}
	case Pawn:
		p.DoubleStep = false
	}
}

// WithStartingState returns the piece with the state it has when first set
// down on pos: a king keeps its castling rights only on its home square, a
// rook keeps only the right matching the corner it stands on and a pawn
// may double step only from its starting row.
func (p Piece) WithStartingState(pos Position) Piece {
	p.ShortCastle, p.LongCastle, p.DoubleStep = false, false, false
	home := pos.Row == p.Colour.HomeRow()
	switch p.Kind {
	case King:
		if home && pos.Col == KingColumn {
			p.ShortCastle, p.LongCastle = true, true
		}
	case Rook:
		p.ShortCastle = home && pos.Col == ShortRookColumn
		p.LongCastle = home && pos.Col == LongRookColumn
	case Pawn:
		p.DoubleStep = pos.Row == p.Colour.PawnRow()
	}
	return p
}

var figurines = map[PieceKind][2]rune{
	King:   {'♔', '♚'},
	Queen:  {'♕', '♛'},
	Rook:   {'♖', '♜'},
	Bishop: {'♗', '♝'},
	Knight: {'♘', '♞'},
	Pawn:   {'♙', '♟'},
}

// Symbol returns the Unicode figurine of the piece.
func (p Piece) Symbol() rune {
	pair, ok := figurines[p.Kind]
	if !ok {
		return ' '
	}
	if p.Colour == White {
		return pair[0]
	}
	return pair[1]
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}
