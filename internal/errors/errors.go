// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the layered error kinds raised while converting coordinates, parsing
// move notation and validating moves, and lets callers inspect them with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidPosition indicates a coordinate outside the board.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrParseFailure indicates that a move string could not be parsed.
	ErrParseFailure = errors.New("parse failure")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidPlacement indicates malformed initial placement data.
	ErrInvalidPlacement = errors.New("invalid placement")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotInitialized indicates a move was submitted before the board was set up.
	ErrNotInitialized = errors.New("game not initialized")

	// ErrGameOver indicates a move was submitted after checkmate.
	ErrGameOver = errors.New("game is over")
)

// PositionError reports a zero-based board coordinate out of range.
type PositionError struct {
	Row int
	Col int
}

// Error returns a message naming the first offending component.
func (e *PositionError) Error() string {
	if e.Row < 0 || e.Row > 7 {
		return fmt.Sprintf("row %d not in range [0, 7]", e.Row)
	}
	return fmt.Sprintf("column %d not in range [0, 7]", e.Col)
}

// Is reports whether target is ErrInvalidPosition.
func (e *PositionError) Is(target error) bool {
	return target == ErrInvalidPosition
}

// ChessPositionError reports an algebraic coordinate out of range.
type ChessPositionError struct {
	File byte
	Rank byte
}

// Error returns a message naming the first offending component.
func (e *ChessPositionError) Error() string {
	if e.Rank < '1' || e.Rank > '8' {
		return fmt.Sprintf("rank '%c' not in range [1, 8]", e.Rank)
	}
	return fmt.Sprintf("file '%c' not in range [a, h]", e.File)
}

// Is reports whether target is ErrInvalidPosition.
func (e *ChessPositionError) Is(target error) bool {
	return target == ErrInvalidPosition
}

// NotationKind classifies a NotationError.
type NotationKind int

const (
	EmptyInput NotationKind = iota
	MissingCharacter
	InvalidPiece
	InvalidCharacter
	MissingCaptureMarker
	MissingDestinationFile
	MissingDestinationRank
	InvalidSquare
)

// NotationError is raised by the notation parser. Ordinal names the
// missing character ("second", "third", ...) and Char holds the offending
// character where one exists.
type NotationError struct {
	Kind    NotationKind
	Ordinal string
	Char    byte
	Err     error
}

// Error returns a human-readable description of the parse failure.
func (e *NotationError) Error() string {
	switch e.Kind {
	case EmptyInput:
		return "empty input"
	case MissingCharacter:
		return fmt.Sprintf("missing %s character", e.Ordinal)
	case InvalidPiece:
		return fmt.Sprintf("invalid piece character: %c", e.Char)
	case InvalidCharacter:
		return fmt.Sprintf("invalid character: %c", e.Char)
	case MissingCaptureMarker:
		return "attempted to capture a piece without the 'x' marker"
	case MissingDestinationFile:
		return "missing destination file"
	case MissingDestinationRank:
		return "missing destination rank"
	case InvalidSquare:
		return fmt.Sprintf("invalid square: %v", e.Err)
	}
	return "invalid notation"
}

// Unwrap returns the underlying coordinate error, if any.
func (e *NotationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrParseFailure.
func (e *NotationError) Is(target error) bool {
	return target == ErrParseFailure
}

// MoveKind classifies a MoveError.
type MoveKind int

const (
	NoPieceAvailable MoveKind = iota
	MoreThanOnePieceAvailable
	SquareOccupied
	InvalidCapture
	InvalidCastle
	InvalidMove
	KingWouldBeInCheck
	InvalidNotation
)

var moveKindNames = [...]string{
	NoPieceAvailable:          "no piece available for this move",
	MoreThanOnePieceAvailable: "more than one piece can make this move",
	SquareOccupied:            "destination square is occupied",
	InvalidCapture:            "invalid capture",
	InvalidCastle:             "invalid castle",
	InvalidMove:               "invalid move",
	KingWouldBeInCheck:        "the king would be in check",
	InvalidNotation:           "invalid notation",
}

// String returns the description of the kind.
func (k MoveKind) String() string {
	if int(k) >= 0 && int(k) < len(moveKindNames) {
		return moveKindNames[k]
	}
	return "unknown move error"
}

// MoveError is the semantic-layer error returned for a rejected move.
// Reason refines InvalidCapture, InvalidCastle and InvalidMove; Err holds
// the wrapped lower-layer error for InvalidNotation.
type MoveError struct {
	Kind   MoveKind
	Reason string
	Err    error
}

// NewMoveError creates a MoveError of the given kind.
func NewMoveError(kind MoveKind, reason string) *MoveError {
	return &MoveError{Kind: kind, Reason: reason}
}

// Error returns a human-readable description of the rejected move.
func (e *MoveError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Reason != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return e.Kind.String()
}

// Unwrap returns the wrapped lower-layer error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIllegalMove.
func (e *MoveError) Is(target error) bool {
	return target == ErrIllegalMove
}

// AsMoveError returns err as a *MoveError, wrapping any other error in
// an InvalidNotation MoveError. A nil err yields nil.
func AsMoveError(err error) *MoveError {
	if err == nil {
		return nil
	}
	var moveErr *MoveError
	if errors.As(err, &moveErr) {
		return moveErr
	}
	return &MoveError{Kind: InvalidNotation, Err: err}
}

// ReplayError wraps errors with replay context, including the ply
// position and move text. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type ReplayError struct {
	Err      error  // The underlying error
	PlyNum   int    // 1-based ply number where the error occurred
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
	Line     int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *ReplayError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the ReplayError wrapper.
func (e *ReplayError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file location context.
// It's used for placement files and FEN strings.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	loc := e.File
	if e.Line > 0 {
		if loc != "" {
			loc += ":"
		} else {
			loc = "line "
		}
		loc += fmt.Sprintf("%d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
	}
	if loc != "" {
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
