package game

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/notation"
)

// HandleMove parses, validates and applies one move in short algebraic
// notation for the side to move. A rejected move leaves the game
// untouched and is reported as a *errors.MoveError. A checkmating move
// ends the game; later calls fail with errors.ErrGameOver.
func (s *State) HandleMove(text string) error {
	if !s.initialized {
		return errors.ErrNotInitialized
	}
	if s.status == GameOver {
		return errors.ErrGameOver
	}

	m, err := notation.ParseMove(s, text)
	if err != nil {
		return errors.AsMoveError(err)
	}

	if m.IsCastling() {
		if err := s.validateCastlingPath(m); err != nil {
			return err
		}
	}
	if err := s.verifyKingSafety(m); err != nil {
		return err
	}

	s.updateKingPosition(m)
	s.board.UpdatePieceState(m.Primary.Source)
	if m.Secondary != nil {
		s.board.UpdatePieceState(m.Secondary.Source)
	}
	s.recordCapture(m.Destination())
	s.board.ApplyMove(m)
	s.history = append(s.history, text)

	defender := s.turn.Opposite()
	s.inCheck = s.IsKingInCheck(&s.board, s.kings[defender], defender)
	if s.inCheck && s.isCheckmate(defender) {
		s.status = GameOver
		return nil
	}

	s.turn = defender
	s.status = statusFor(defender)
	return nil
}

// verifyKingSafety simulates m on a copy of the board and rejects it if
// the mover's king is attacked afterwards.
func (s *State) verifyKingSafety(m chess.Move) error {
	trial := s.board
	trial.ApplyMove(m)

	kingPos := s.kings[s.turn]
	if piece, ok := trial.Get(m.Destination()); ok && piece.Kind == chess.King {
		kingPos = m.Destination()
	}

	if s.IsKingInCheck(&trial, kingPos, s.turn) {
		return errors.NewMoveError(errors.KingWouldBeInCheck, "")
	}
	return nil
}

// validateCastlingPath checks every square the king occupies while
// castling, from its home square to its destination inclusive.
func (s *State) validateCastlingPath(m chess.Move) error {
	src, dst := m.Primary.Source, m.Primary.Destination
	first, last := src.Col, dst.Col
	if first > last {
		first, last = last, first
	}

	for col := first; col <= last; col++ {
		step := chess.NewMove(src, chess.Position{Row: src.Row, Col: col})
		if err := s.verifyKingSafety(step); err != nil {
			return err
		}
	}
	return nil
}

func (s *State) updateKingPosition(m chess.Move) {
	if s.board.MustGet(m.Primary.Source).Kind == chess.King {
		s.kings[s.turn] = m.Primary.Destination
	}
}

// recordCapture stores the piece on pos, if any, before it is replaced.
func (s *State) recordCapture(pos chess.Position) {
	piece, ok := s.board.Get(pos)
	if !ok {
		return
	}
	if piece.Colour == chess.White {
		s.capturedWhite = append(s.capturedWhite, piece)
	} else {
		s.capturedBlack = append(s.capturedBlack, piece)
	}
}

// isCheckmate reports whether defender, already in check, has no king
// move that escapes and no other piece move that removes the check.
func (s *State) isCheckmate(defender chess.Colour) bool {
	kingPos := s.kings[defender]
	king := s.board.MustGet(kingPos)

	for _, dst := range engine.PossibleMoves(&s.board, king, kingPos) {
		trial := s.board
		trial.MovePiece(kingPos, dst)
		if !s.IsKingInCheck(&trial, dst, defender) {
			return false
		}
	}

	for _, occ := range s.board.Pieces() {
		if occ.Piece.Colour != defender || occ.Piece.Kind == chess.King {
			continue
		}
		for _, dst := range engine.PossibleMoves(&s.board, occ.Piece, occ.Position) {
			trial := s.board
			trial.MovePiece(occ.Position, dst)
			if !s.IsKingInCheck(&trial, kingPos, defender) {
				return false
			}
		}
	}
	return true
}
