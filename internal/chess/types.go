// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// HomeRow returns the row holding the colour's king and rooks at the start.
func (c Colour) HomeRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row holding the colour's pawns at the start.
func (c Colour) PawnRow() int {
	if c == White {
		return BoardSize - 2
	}
	return 1
}

// Forward returns the row delta of a pawn advance (White moves toward row 0).
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoPiece PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter maps a notation letter to a piece kind.
// File letters and 'P' denote pawns.
func KindFromLetter(c byte) (PieceKind, bool) {
	switch c {
	case 'K':
		return King, true
	case 'Q':
		return Queen, true
	case 'R':
		return Rook, true
	case 'B':
		return Bishop, true
	case 'N':
		return Knight, true
	case 'P':
		return Pawn, true
	}
	if IsFile(c) {
		return Pawn, true
	}
	return NoPiece, false
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FirstFile = 'a'
	LastFile  = FirstFile + BoardSize - 1
	FirstRank = '1'
	LastRank  = FirstRank + BoardSize - 1
)

// Home and destination columns of the castling pieces.
const (
	KingColumn         = 4
	ShortRookColumn    = 7
	LongRookColumn     = 0
	KingShortCastleCol = 6
	KingLongCastleCol  = 2
	RookShortCastleCol = 5
	RookLongCastleCol  = 3
)

// Notation markers.
const (
	CaptureMarker   = 'x'
	CheckMarker     = '+'
	CheckmateMarker = '#'

	// CastleMarker is the long castle token; its first three characters
	// form the short castle token.
	CastleMarker = "O-O-O"
)

// IsFile returns true if c is a valid file character.
func IsFile(c byte) bool {
	return c >= FirstFile && c <= LastFile
}

// IsRank returns true if c is a valid rank character.
func IsRank(c byte) bool {
	return c >= FirstRank && c <= LastRank
}

// Placement is one record of initial piece placement data.
type Placement struct {
	Colour   Colour
	Kind     PieceKind
	Position Position
}
