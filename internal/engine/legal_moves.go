package engine

import "github.com/lgbarn/chessrules/internal/chess"

// PossibleMoves enumerates every square piece can reach from src by its
// movement geometry: empty squares it can move to and enemy-occupied
// squares it attacks. It does not consider castling or whether the move
// leaves the mover's king in check.
func PossibleMoves(board *chess.Board, piece chess.Piece, src chess.Position) []chess.Position {
	var candidates []chess.Position
	switch piece.Kind {
	case chess.Knight:
		candidates = offsetTargets(src, knightJumps)
	case chess.King:
		candidates = offsetTargets(src, kingSteps)
	case chess.Bishop:
		candidates = rayTargets(board, src, diagonalRays)
	case chess.Rook:
		candidates = rayTargets(board, src, straightRays)
	case chess.Queen:
		candidates = append(rayTargets(board, src, diagonalRays), rayTargets(board, src, straightRays)...)
	case chess.Pawn:
		candidates = pawnTargets(src, piece.Colour)
	}

	var moves []chess.Position
	for _, dst := range candidates {
		target, occupied := board.Get(dst)
		switch {
		case !occupied:
			if CanMove(board, piece, src, dst) {
				moves = append(moves, dst)
			}
		case target.Colour != piece.Colour:
			if Attacks(board, piece, src, dst) {
				moves = append(moves, dst)
			}
		}
	}
	return moves
}

// offsetTargets returns the on-board squares at the given offsets from src.
func offsetTargets(src chess.Position, offsets []chess.Delta) []chess.Position {
	var result []chess.Position
	for _, d := range offsets {
		if dst := src.Add(d); dst.Valid() {
			result = append(result, dst)
		}
	}
	return result
}

// rayTargets walks each ray up to and including the first occupied square.
func rayTargets(board *chess.Board, src chess.Position, rays []chess.Delta) []chess.Position {
	var result []chess.Position
	for _, d := range rays {
		for dst := src.Add(d); dst.Valid(); dst = dst.Add(d) {
			result = append(result, dst)
			if board.IsOccupied(dst) {
				break
			}
		}
	}
	return result
}

// pawnTargets returns the advance and capture squares of a pawn.
func pawnTargets(src chess.Position, colour chess.Colour) []chess.Position {
	fwd := colour.Forward()
	return offsetTargets(src, []chess.Delta{
		{Row: fwd, Col: 0},
		{Row: 2 * fwd, Col: 0},
		{Row: fwd, Col: -1},
		{Row: fwd, Col: 1},
	})
}
