// Package game owns a chess position and drives it move by move: it
// resolves notation to concrete moves, rejects illegal ones, keeps
// castling rights and captured pieces up to date and detects checkmate.
package game

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
)

// Status is the turn state of a game.
type Status int

const (
	WhiteToMove Status = iota
	BlackToMove
	GameOver
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case WhiteToMove:
		return "White to move"
	case BlackToMove:
		return "Black to move"
	case GameOver:
		return "Game over"
	}
	return "Unknown"
}

func statusFor(turn chess.Colour) Status {
	if turn == chess.White {
		return WhiteToMove
	}
	return BlackToMove
}

// State is a game in progress. The zero value is not usable; create one
// with New and set it up with Initialize, or use NewStandard or
// NewFromFEN. A State is not safe for concurrent use.
type State struct {
	board         chess.Board
	turn          chess.Colour
	kings         [2]chess.Position // indexed by colour
	capturedWhite []chess.Piece
	capturedBlack []chess.Piece
	history       []string
	status        Status
	inCheck       bool
	initialized   bool
}

// New creates an empty game with White to move.
func New() *State {
	return &State{turn: chess.White, status: WhiteToMove}
}

// NewStandard creates a game set up in the standard starting position.
func NewStandard() *State {
	s := New()
	s.board.SetupInitialPosition()
	s.kings[chess.White], _ = engine.FindKing(&s.board, chess.White)
	s.kings[chess.Black], _ = engine.FindKing(&s.board, chess.Black)
	s.initialized = true
	return s
}

// Initialize sets up the board from placement records. Every record
// places a piece as if it had not moved yet. Exactly one king of each
// colour is required and no square may be used twice.
func (s *State) Initialize(placements []chess.Placement) error {
	var board chess.Board
	var kings [2]chess.Position
	var kingCount [2]int

	for _, p := range placements {
		if !p.Position.Valid() {
			return fmt.Errorf("%w: %w", errors.ErrInvalidPlacement, &errors.PositionError{Row: p.Position.Row, Col: p.Position.Col})
		}
		if p.Kind == chess.NoPiece {
			return errors.Wrapf(errors.ErrInvalidPlacement, "no piece kind for %v", p.Position)
		}
		if board.IsOccupied(p.Position) {
			return errors.Wrapf(errors.ErrInvalidPlacement, "square %v placed twice", p.Position)
		}

		board.Place(chess.NewPiece(p.Kind, p.Colour).WithStartingState(p.Position), p.Position)
		if p.Kind == chess.King {
			kings[p.Colour] = p.Position
			kingCount[p.Colour]++
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kingCount[colour] != 1 {
			return errors.Wrapf(errors.ErrInvalidPlacement, "%d %v kings", kingCount[colour], colour)
		}
	}

	*s = State{
		board:       board,
		turn:        chess.White,
		kings:       kings,
		status:      WhiteToMove,
		initialized: true,
	}
	return nil
}

// NewFromFEN creates a game from a FEN string. Only the placement, side
// to move and castling fields are used.
func NewFromFEN(fen string) (*State, error) {
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}

	s := &State{board: *board, turn: toMove, status: statusFor(toMove), initialized: true}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		pos, ok := engine.FindKing(board, colour)
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidFEN, "no %v king", colour)
		}
		s.kings[colour] = pos
	}

	s.inCheck = s.IsKingInCheck(&s.board, s.kings[toMove], toMove)
	if s.inCheck && s.isCheckmate(toMove) {
		s.status = GameOver
		s.turn = toMove.Opposite()
	}
	return s, nil
}

// Turn returns the side to move, or the winner once the game is over.
func (s *State) Turn() chess.Colour {
	return s.turn
}

// Status returns the turn state.
func (s *State) Status() Status {
	return s.status
}

// Winner returns the side that delivered checkmate.
func (s *State) Winner() (chess.Colour, bool) {
	if s.status != GameOver {
		return chess.White, false
	}
	return s.turn, true
}

// InCheck reports whether the side to move is in check. After checkmate
// it reports the mated side's check.
func (s *State) InCheck() bool {
	return s.inCheck
}

// Board returns a copy of the current board.
func (s *State) Board() *chess.Board {
	return s.board.Copy()
}

// PieceAt returns the piece on pos.
func (s *State) PieceAt(pos chess.Position) (chess.Piece, bool) {
	return s.board.Get(pos)
}

// KingPosition returns the tracked square of colour's king.
func (s *State) KingPosition(colour chess.Colour) chess.Position {
	return s.kings[colour]
}

// CapturedWhite returns the white pieces captured so far, in order.
func (s *State) CapturedWhite() []chess.Piece {
	return append([]chess.Piece(nil), s.capturedWhite...)
}

// CapturedBlack returns the black pieces captured so far, in order.
func (s *State) CapturedBlack() []chess.Piece {
	return append([]chess.Piece(nil), s.capturedBlack...)
}

// History returns the move strings applied so far.
func (s *State) History() []string {
	return append([]string(nil), s.history...)
}

// FEN returns the position in Forsyth-Edwards Notation. Once the game is
// over the mated side is shown to move.
func (s *State) FEN() string {
	toMove := s.turn
	if s.status == GameOver {
		toMove = s.turn.Opposite()
	}
	return engine.BoardToFEN(&s.board, toMove)
}

// IsKingInCheck reports whether the defender's king on kingPos is
// attacked on board. It is the single check primitive used both to
// validate moves and to detect checkmate.
func (s *State) IsKingInCheck(board *chess.Board, kingPos chess.Position, defender chess.Colour) bool {
	return engine.IsKingInCheck(board, kingPos, defender)
}
