package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// Reasons attached to InvalidCapture and InvalidMove errors.
const (
	ReasonCaptureEmpty     = "destination square is empty"
	ReasonCaptureOwnColour = "cannot capture a piece of the same colour"
	ReasonSameSquare       = "source and destination are the same square"
)

// ValidateTarget checks what stands on dst against the capture marker of
// the move. A capture needs an enemy piece there. A quiet move needs the
// square empty: an enemy piece means the capture marker was left out, an
// own piece means the square is occupied.
func ValidateTarget(board *chess.Board, piece chess.Piece, src, dst chess.Position, capture bool) error {
	if src == dst {
		return errors.NewMoveError(errors.InvalidMove, ReasonSameSquare)
	}

	target, occupied := board.Get(dst)
	if capture {
		if !occupied {
			return errors.NewMoveError(errors.InvalidCapture, ReasonCaptureEmpty)
		}
		if target.Colour == piece.Colour {
			return errors.NewMoveError(errors.InvalidCapture, ReasonCaptureOwnColour)
		}
		return nil
	}

	if !occupied {
		return nil
	}
	if target.Colour != piece.Colour {
		return &errors.MoveError{
			Kind: errors.InvalidNotation,
			Err:  &errors.NotationError{Kind: errors.MissingCaptureMarker},
		}
	}
	return errors.NewMoveError(errors.SquareOccupied, "")
}

// Reaches validates the destination and then checks the geometry: attack
// geometry for captures, quiet move geometry otherwise. A validation
// failure is returned as an error rather than false so that callers
// resolving notation can report it directly.
func Reaches(board *chess.Board, piece chess.Piece, src, dst chess.Position, capture bool) (bool, error) {
	if err := ValidateTarget(board, piece, src, dst, capture); err != nil {
		return false, err
	}
	if capture {
		return Attacks(board, piece, src, dst), nil
	}
	return CanMove(board, piece, src, dst), nil
}
