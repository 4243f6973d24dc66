package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece kind.
func ConvertFENCharToPiece(c byte) chess.PieceKind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoPiece
	}
}

// NewBoardFromFEN creates a board and the side to move from a FEN string.
// Only the placement, side to move and castling fields are interpreted.
// Kings and rooks hold only the castling rights the castling field grants,
// and pawns may double step only from their starting row.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, chess.White, err
	}

	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				kind := ConvertFENCharToPiece(byte(c))
				if kind == chess.NoPiece {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}

				piece := chess.Piece{Kind: kind, Colour: colour}
				if kind == chess.Pawn {
					piece.DoubleStep = row == colour.PawnRow()
				}
				board.Place(piece, chess.Position{Row: row, Col: col})
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// parseCastlingRights grants castling rights to the king and rook named
// by each letter of the castling field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		var colour chess.Colour
		var short bool
		switch c {
		case 'K':
			colour, short = chess.White, true
		case 'Q':
			colour, short = chess.White, false
		case 'k':
			colour, short = chess.Black, true
		case 'q':
			colour, short = chess.Black, false
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
		grantCastle(board, colour, short)
	}
	return nil
}

// grantCastle sets a castling right on the king and rook if both stand
// on their home squares. Rights for pieces elsewhere are ignored.
func grantCastle(board *chess.Board, colour chess.Colour, short bool) {
	kingLeg, rookLeg := CastleLegs(colour, short)
	king, rook := board.At(kingLeg.Source), board.At(rookLeg.Source)
	if !king.Is(chess.King, colour) || !rook.Is(chess.Rook, colour) {
		return
	}
	if short {
		king.ShortCastle, rook.ShortCastle = true, true
	} else {
		king.LongCastle, rook.LongCastle = true, true
	}
	board.Place(king, kingLeg.Source)
	board.Place(rook, rookLeg.Source)
}

// BoardToFEN converts a board to a FEN string. The en passant field is
// always "-" and the clocks are reset.
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, toMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteString(" - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := board.Get(chess.Position{Row: row, Col: col})
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, toMove chess.Colour) {
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, right := range []struct {
		colour chess.Colour
		short  bool
		letter byte
	}{
		{chess.White, true, 'K'},
		{chess.White, false, 'Q'},
		{chess.Black, true, 'k'},
		{chess.Black, false, 'q'},
	} {
		if hasCastleRight(board, right.colour, right.short) {
			sb.WriteByte(right.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// hasCastleRight reports whether both castling pieces for the side are
// at home and still hold the right.
func hasCastleRight(board *chess.Board, colour chess.Colour, short bool) bool {
	kingLeg, rookLeg := CastleLegs(colour, short)
	king, rook := board.At(kingLeg.Source), board.At(rookLeg.Source)
	if !king.Is(chess.King, colour) || !rook.Is(chess.Rook, colour) {
		return false
	}
	if short {
		return king.ShortCastle && rook.ShortCastle
	}
	return king.LongCastle && rook.LongCastle
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _, _ := NewBoardFromFEN(InitialFEN)
	return board
}
