package chess

import "fmt"

// Board is a fixed 8x8 grid of pieces indexed by [row][col].
// It is a value type: assigning or copying a Board copies every square,
// which is how hypothetical moves are simulated.
type Board struct {
	squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Copy creates an independent copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Get returns the piece at pos and whether the square is occupied.
func (b *Board) Get(pos Position) (Piece, bool) {
	p := b.squares[pos.Row][pos.Col]
	return p, !p.IsEmpty()
}

// At returns the piece at pos, or the empty piece.
func (b *Board) At(pos Position) Piece {
	return b.squares[pos.Row][pos.Col]
}

// MustGet returns the piece at a position the caller knows is occupied.
// It panics if the square is empty.
func (b *Board) MustGet(pos Position) Piece {
	p, ok := b.Get(pos)
	if !ok {
		panic(fmt.Sprintf("chess: no piece on %v", pos))
	}
	return p
}

// Place puts a piece on pos, replacing whatever was there.
func (b *Board) Place(piece Piece, pos Position) {
	b.squares[pos.Row][pos.Col] = piece
}

// Remove clears pos.
func (b *Board) Remove(pos Position) {
	b.squares[pos.Row][pos.Col] = Piece{}
}

// IsOccupied returns true if a piece stands on pos.
func (b *Board) IsOccupied(pos Position) bool {
	return !b.squares[pos.Row][pos.Col].IsEmpty()
}

// MovePiece moves the piece on src to dst, overwriting dst and clearing
// src. Legality is the caller's responsibility.
func (b *Board) MovePiece(src, dst Position) {
	b.squares[dst.Row][dst.Col] = b.squares[src.Row][src.Col]
	b.squares[src.Row][src.Col] = Piece{}
}

// IsPathClear walks squares unit steps from src toward dst and returns
// false as soon as one of them is occupied.
func (b *Board) IsPathClear(src, dst Position, squares int) bool {
	step := DeltaBetween(src, dst).Unit()
	pos := src.Add(step)
	for i := 0; i < squares; i++ {
		if !pos.Valid() || b.IsOccupied(pos) {
			return false
		}
		pos = pos.Add(step)
	}
	return true
}

// ApplyMove performs both legs of a move. Legs whose source and
// destination coincide are skipped.
func (b *Board) ApplyMove(m Move) {
	if m.Primary.Source != m.Primary.Destination {
		b.MovePiece(m.Primary.Source, m.Primary.Destination)
	}
	if m.Secondary != nil && m.Secondary.Source != m.Secondary.Destination {
		b.MovePiece(m.Secondary.Source, m.Secondary.Destination)
	}
}

// UpdatePieceState revokes castling rights and double-step eligibility of
// the piece about to leave pos. It panics if pos is empty.
func (b *Board) UpdatePieceState(pos Position) {
	piece := b.MustGet(pos)
	piece.MarkMoved(pos)
	b.squares[pos.Row][pos.Col] = piece
}

// OccupiedSquare pairs a piece with the square it stands on.
type OccupiedSquare struct {
	Piece    Piece
	Position Position
}

// Pieces returns every occupied square in row-major order starting at a8.
func (b *Board) Pieces() []OccupiedSquare {
	var result []OccupiedSquare
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; !p.IsEmpty() {
				result = append(result, OccupiedSquare{Piece: p, Position: Position{Row: row, Col: col}})
			}
		}
	}
	return result
}

// SetupInitialPosition clears the board and sets up the standard chess
// starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		for _, colour := range []Colour{White, Black} {
			home := Position{Row: colour.HomeRow(), Col: col}
			pawns := Position{Row: colour.PawnRow(), Col: col}
			b.Place(NewPiece(backRank[col], colour).WithStartingState(home), home)
			b.Place(NewPiece(Pawn, colour).WithStartingState(pawns), pawns)
		}
	}
}
