package engine

import "github.com/lgbarn/chessrules/internal/chess"

// isDiagonal reports whether dst lies on a diagonal through src.
func isDiagonal(src, dst chess.Position) bool {
	d := chess.DeltaBetween(src, dst)
	return d.Row != 0 && abs(d.Row) == abs(d.Col)
}

// isStraight reports whether dst shares exactly one of row or column with src.
func isStraight(src, dst chess.Position) bool {
	d := chess.DeltaBetween(src, dst)
	return (sign(d.Row) == 0) != (sign(d.Col) == 0)
}

// isSlideClear checks the squares a sliding piece passes over on its way
// to dst. When the destination itself must be empty (quiet moves) it is
// included in the walk; attacks stop one square short of it.
func isSlideClear(board *chess.Board, src, dst chess.Position, includeDestination bool) bool {
	squares := distance(src, dst)
	if !includeDestination {
		squares--
	}
	return board.IsPathClear(src, dst, squares)
}

// knightJumps are the fixed offsets of a knight move.
var knightJumps = []chess.Delta{
	{Row: -2, Col: -1}, {Row: -2, Col: 1}, {Row: -1, Col: -2}, {Row: -1, Col: 2},
	{Row: 1, Col: -2}, {Row: 1, Col: 2}, {Row: 2, Col: -1}, {Row: 2, Col: 1},
}

// kingSteps are the eight unit offsets.
var kingSteps = []chess.Delta{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

var (
	diagonalRays = []chess.Delta{{Row: -1, Col: -1}, {Row: -1, Col: 1}, {Row: 1, Col: -1}, {Row: 1, Col: 1}}
	straightRays = []chess.Delta{{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1}}
)

func isKnightJump(src, dst chess.Position) bool {
	d := chess.DeltaBetween(src, dst)
	r, c := abs(d.Row), abs(d.Col)
	return (r == 1 && c == 2) || (r == 2 && c == 1)
}

func isKingStep(src, dst chess.Position) bool {
	return src != dst && distance(src, dst) == 1
}
