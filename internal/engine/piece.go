// Package engine provides the chess movement rules: per-piece move and
// attack geometry, castling predicates, move enumeration, check detection
// and FEN import/export.
package engine

import "github.com/lgbarn/chessrules/internal/chess"

// CanMove reports whether piece, standing on src, has the geometry of a
// quiet move to dst. Sliding pieces need every square up to and including
// dst to be empty. It does not look at what stands on dst for the other
// kinds; ValidateTarget does that.
func CanMove(board *chess.Board, piece chess.Piece, src, dst chess.Position) bool {
	if src == dst {
		return false
	}
	switch piece.Kind {
	case chess.Pawn:
		return pawnCanMove(board, piece, src, dst)
	case chess.Knight:
		return isKnightJump(src, dst)
	case chess.Bishop:
		return isDiagonal(src, dst) && isSlideClear(board, src, dst, true)
	case chess.Rook:
		return isStraight(src, dst) && isSlideClear(board, src, dst, true)
	case chess.Queen:
		return (isDiagonal(src, dst) || isStraight(src, dst)) && isSlideClear(board, src, dst, true)
	case chess.King:
		return isKingStep(src, dst)
	}
	return false
}

// Attacks reports whether piece, standing on src, threatens dst. The
// geometry matches CanMove except that pawns attack diagonally and the
// destination of a sliding piece is not treated as an obstacle.
func Attacks(board *chess.Board, piece chess.Piece, src, dst chess.Position) bool {
	if src == dst {
		return false
	}
	switch piece.Kind {
	case chess.Pawn:
		return pawnAttacks(piece, src, dst)
	case chess.Knight:
		return isKnightJump(src, dst)
	case chess.Bishop:
		return isDiagonal(src, dst) && isSlideClear(board, src, dst, false)
	case chess.Rook:
		return isStraight(src, dst) && isSlideClear(board, src, dst, false)
	case chess.Queen:
		return (isDiagonal(src, dst) || isStraight(src, dst)) && isSlideClear(board, src, dst, false)
	case chess.King:
		return isKingStep(src, dst)
	}
	return false
}
