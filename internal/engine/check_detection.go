package engine

import "github.com/lgbarn/chessrules/internal/chess"

// IsKingInCheck returns true if any piece of the colour opposing defender
// attacks kingPos.
func IsKingInCheck(board *chess.Board, kingPos chess.Position, defender chess.Colour) bool {
	return IsSquareAttacked(board, kingPos, defender.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, pos chess.Position, byColour chess.Colour) bool {
	for _, sq := range board.Pieces() {
		if sq.Piece.Colour != byColour {
			continue
		}
		if Attacks(board, sq.Piece, sq.Position, pos) {
			return true
		}
	}
	return false
}

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Position, bool) {
	for _, sq := range board.Pieces() {
		if sq.Piece.Is(chess.King, colour) {
			return sq.Position, true
		}
	}
	return chess.Position{}, false
}

// IsInCheck returns true if the given colour's king is in check. A board
// without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingPos, ok := FindKing(board, colour)
	if !ok {
		return false
	}
	return IsKingInCheck(board, kingPos, colour)
}
