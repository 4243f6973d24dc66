package engine

import "github.com/lgbarn/chessrules/internal/chess"

// CastleLegs returns the king and rook legs of a castle for colour.
func CastleLegs(colour chess.Colour, short bool) (king, rook chess.Leg) {
	row := colour.HomeRow()
	king.Source = chess.Position{Row: row, Col: chess.KingColumn}
	king.Destination = chess.Position{Row: row, Col: chess.KingLongCastleCol}
	rook.Source = chess.Position{Row: row, Col: chess.LongRookColumn}
	rook.Destination = chess.Position{Row: row, Col: chess.RookLongCastleCol}
	if short {
		king.Destination.Col = chess.KingShortCastleCol
		rook.Source.Col = chess.ShortRookColumn
		rook.Destination.Col = chess.RookShortCastleCol
	}
	return king, rook
}

// KingCanCastle reports whether king may make the castling leg src to dst.
// The king must still hold the right for that side, stand on its home
// square, and every square between it and the rook must be empty.
// Whether those squares are attacked is checked by the caller.
func KingCanCastle(board *chess.Board, king chess.Piece, src, dst chess.Position) bool {
	if king.Kind != chess.King {
		return false
	}
	home := king.Colour.HomeRow()
	if src.Row != home || src.Col != chess.KingColumn || dst.Row != home {
		return false
	}

	var first, last int
	switch dst.Col {
	case chess.KingShortCastleCol:
		if !king.ShortCastle {
			return false
		}
		first, last = chess.KingColumn+1, chess.ShortRookColumn-1
	case chess.KingLongCastleCol:
		if !king.LongCastle {
			return false
		}
		first, last = chess.LongRookColumn+1, chess.KingColumn-1
	default:
		return false
	}

	for col := first; col <= last; col++ {
		if board.IsOccupied(chess.Position{Row: home, Col: col}) {
			return false
		}
	}
	return true
}

// RookCanCastle reports whether rook may make the castling leg src to dst.
// The rook must stand on a corner of its home row, still hold the right
// matching that corner, and have a clear straight path to dst.
func RookCanCastle(board *chess.Board, rook chess.Piece, src, dst chess.Position) bool {
	if rook.Kind != chess.Rook || src.Row != rook.Colour.HomeRow() {
		return false
	}
	switch src.Col {
	case chess.ShortRookColumn:
		if !rook.ShortCastle {
			return false
		}
	case chess.LongRookColumn:
		if !rook.LongCastle {
			return false
		}
	default:
		return false
	}
	return CanMove(board, rook, src, dst)
}
