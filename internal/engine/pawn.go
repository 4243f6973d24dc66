package engine

import "github.com/lgbarn/chessrules/internal/chess"

// pawnCanMove checks a straight pawn advance. The two square advance needs
// the pawn's double step to be available and the square in between empty.
func pawnCanMove(board *chess.Board, pawn chess.Piece, src, dst chess.Position) bool {
	if src.Col != dst.Col {
		return false
	}
	advance := (dst.Row - src.Row) * pawn.Colour.Forward()
	switch advance {
	case 1:
		return true
	case 2:
		return pawn.DoubleStep && board.IsPathClear(src, dst, 1)
	}
	return false
}

// pawnAttacks checks the diagonal forward capture of a pawn.
func pawnAttacks(pawn chess.Piece, src, dst chess.Position) bool {
	d := chess.DeltaBetween(src, dst)
	return d.Row == pawn.Colour.Forward() && abs(d.Col) == 1
}
