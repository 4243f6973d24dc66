package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/errors"
)

// Position is a zero-based board coordinate. Row 0 is rank 8 and column 0
// is file a, so (0, 0) is the a8 corner.
type Position struct {
	Row int
	Col int
}

// NewPosition creates a position, rejecting coordinates outside the board.
func NewPosition(row, col int) (Position, error) {
	p := Position{Row: row, Col: col}
	if !p.Valid() {
		return Position{}, &errors.PositionError{Row: row, Col: col}
	}
	return p, nil
}

// Valid returns true if both components are within the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Add returns the position offset by d. The result may be off the board.
func (p Position) Add(d Delta) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Square converts the position to algebraic coordinates.
func (p Position) Square() (Square, error) {
	if !p.Valid() {
		return Square{}, &errors.PositionError{Row: p.Row, Col: p.Col}
	}
	return Square{
		File: byte(FirstFile + p.Col),
		Rank: byte('0' + BoardSize - p.Row),
	}, nil
}

// String returns the algebraic name of the position, e.g. "e4".
func (p Position) String() string {
	sq, err := p.Square()
	if err != nil {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return sq.String()
}

// Delta is a signed offset between two positions.
type Delta struct {
	Row int
	Col int
}

// DeltaBetween returns dst - src.
func DeltaBetween(src, dst Position) Delta {
	return Delta{Row: dst.Row - src.Row, Col: dst.Col - src.Col}
}

// Unit returns the delta reduced to a single step in each component.
func (d Delta) Unit() Delta {
	return Delta{Row: unitStep(d.Row), Col: unitStep(d.Col)}
}

func unitStep(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Square is a human-facing algebraic coordinate: file 'a'-'h', rank '1'-'8'.
type Square struct {
	File byte
	Rank byte
}

// Position converts the square to a board position.
func (s Square) Position() (Position, error) {
	if !IsRank(s.Rank) || !IsFile(s.File) {
		return Position{}, &errors.ChessPositionError{File: s.File, Rank: s.Rank}
	}
	return Position{
		Row: BoardSize - int(s.Rank-'0'),
		Col: int(s.File - FirstFile),
	}, nil
}

// String returns the square in algebraic form.
func (s Square) String() string {
	return string([]byte{s.File, s.Rank})
}

// ParsePosition converts a two character algebraic name such as "e4".
func ParsePosition(name string) (Position, error) {
	if len(name) != 2 {
		return Position{}, fmt.Errorf("square %q: expected 2 characters: %w", name, errors.ErrInvalidPosition)
	}
	return Square{File: name[0], Rank: name[1]}.Position()
}

// MustParsePosition is like ParsePosition but panics on error.
// It is intended for constants and tests.
func MustParsePosition(name string) Position {
	p, err := ParsePosition(name)
	if err != nil {
		panic(err)
	}
	return p
}
