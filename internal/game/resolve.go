package game

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
)

// Reasons attached to InvalidCastle errors.
const (
	reasonKingNotHome = "the king is no longer on its original square"
	reasonRookNotHome = "the rook is no longer on its original square"
	reasonNotAllowed  = "this move is not allowed"
)

// FindPiecePosition returns the square of the one piece of the side to
// move that matches kind and can reach dst. A capture uses attack
// geometry, a quiet move uses move geometry. When several pieces match,
// disambiguation (a file or rank character, 0 for none) must narrow them
// to exactly one; with a single match it is not consulted.
func (s *State) FindPiecePosition(kind chess.PieceKind, dst chess.Position, disambiguation byte, capture bool) (chess.Position, error) {
	var matches []chess.Position
	for _, occ := range s.board.Pieces() {
		if !occ.Piece.Is(kind, s.turn) {
			continue
		}
		ok, err := engine.Reaches(&s.board, occ.Piece, occ.Position, dst, capture)
		if err != nil {
			return chess.Position{}, err
		}
		if ok {
			matches = append(matches, occ.Position)
		}
	}

	if len(matches) == 0 {
		return chess.Position{}, errors.NewMoveError(errors.NoPieceAvailable, "")
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if disambiguation == 0 {
		return chess.Position{}, errors.NewMoveError(errors.MoreThanOnePieceAvailable, "")
	}

	var filtered []chess.Position
	for _, pos := range matches {
		square, _ := pos.Square()
		if square.File == disambiguation || square.Rank == disambiguation {
			filtered = append(filtered, pos)
		}
	}
	if len(filtered) != 1 {
		return chess.Position{}, errors.NewMoveError(errors.MoreThanOnePieceAvailable, "")
	}
	return filtered[0], nil
}

// FindCastlingMove returns the king and rook legs of a castle for the
// side to move, checking that both pieces are at home, still hold the
// right and have a clear path. Attacked squares are checked by HandleMove.
func (s *State) FindCastlingMove(short bool) (chess.Move, error) {
	kingLeg, rookLeg := engine.CastleLegs(s.turn, short)

	king, ok := s.board.Get(kingLeg.Source)
	if !ok || !king.Is(chess.King, s.turn) {
		return chess.Move{}, errors.NewMoveError(errors.InvalidCastle, reasonKingNotHome)
	}
	rook, ok := s.board.Get(rookLeg.Source)
	if !ok || !rook.Is(chess.Rook, s.turn) {
		return chess.Move{}, errors.NewMoveError(errors.InvalidCastle, reasonRookNotHome)
	}

	if !engine.KingCanCastle(&s.board, king, kingLeg.Source, kingLeg.Destination) ||
		!engine.RookCanCastle(&s.board, rook, rookLeg.Source, rookLeg.Destination) {
		return chess.Move{}, errors.NewMoveError(errors.InvalidCastle, reasonNotAllowed)
	}

	return chess.NewCastlingMove(kingLeg.Source, kingLeg.Destination, rookLeg.Source, rookLeg.Destination), nil
}
