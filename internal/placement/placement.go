// Package placement reads initial piece placement records.
//
// Each record is one line of four characters: colour (W or B), piece
// letter (K, Q, B, N, R, or P or a file letter for a pawn), file and
// rank. "WKe1" puts the white king on e1 and "Bdd7" a black pawn on d7.
// Blank lines and lines starting with '#' are ignored.
package placement

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// RecordLength is the number of characters in a placement record.
const RecordLength = 4

//go:embed standard.txt
var standard string

// Standard returns the standard starting placement.
func Standard() []chess.Placement {
	placements, err := Decode(strings.NewReader(standard))
	if err != nil {
		panic(fmt.Sprintf("placement: embedded standard placement: %v", err))
	}
	return placements
}

// Load reads placement records from the named file.
func Load(filename string) ([]chess.Placement, error) {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, fmt.Errorf("cannot open placement file: %w", err)
	}
	defer file.Close()

	placements, err := Decode(file)
	if err != nil {
		if parseErr, ok := err.(*errors.ParseError); ok {
			parseErr.File = filename
		}
		return nil, err
	}
	return placements, nil
}

// Decode reads placement records from r in order. A malformed record is
// reported as a *errors.ParseError carrying its line number.
func Decode(r io.Reader) ([]chess.Placement, error) {
	var placements []chess.Placement
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		p, err := DecodeRecord(text)
		if err != nil {
			if parseErr, ok := err.(*errors.ParseError); ok {
				parseErr.Line = line
				return nil, parseErr
			}
			return nil, &errors.ParseError{Err: err, Line: line}
		}
		placements = append(placements, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading placement records: %w", err)
	}
	return placements, nil
}

// DecodeRecord decodes a single four character record.
func DecodeRecord(record string) (chess.Placement, error) {
	if len(record) != RecordLength {
		return chess.Placement{}, &errors.ParseError{
			Err:      errors.ErrInvalidPlacement,
			Expected: fmt.Sprintf("%d characters", RecordLength),
			Got:      fmt.Sprintf("%q", record),
		}
	}

	var p chess.Placement
	switch record[0] {
	case 'W':
		p.Colour = chess.White
	case 'B':
		p.Colour = chess.Black
	default:
		return chess.Placement{}, invalidField(1, "colour W or B", record[0])
	}

	kind, ok := chess.KindFromLetter(record[1])
	if !ok {
		return chess.Placement{}, invalidField(2, "piece letter", record[1])
	}
	p.Kind = kind

	pos, err := chess.Square{File: record[2], Rank: record[3]}.Position()
	if err != nil {
		return chess.Placement{}, &errors.ParseError{
			Err:      fmt.Errorf("%w: %w", errors.ErrInvalidPlacement, err),
			Column:   3,
			Expected: "square",
			Got:      fmt.Sprintf("%q", record[2:]),
		}
	}
	p.Position = pos
	return p, nil
}

func invalidField(column int, expected string, got byte) *errors.ParseError {
	return &errors.ParseError{
		Err:      errors.ErrInvalidPlacement,
		Column:   column,
		Expected: expected,
		Got:      fmt.Sprintf("%q", got),
	}
}

// Encode writes placements to w as records, one per line.
func Encode(w io.Writer, placements []chess.Placement) error {
	bw := bufio.NewWriter(w)
	for _, p := range placements {
		square, err := p.Position.Square()
		if err != nil {
			return fmt.Errorf("%w: %w", errors.ErrInvalidPlacement, err)
		}
		colour := byte('W')
		if p.Colour == chess.Black {
			colour = 'B'
		}
		letter := p.Kind.Letter()
		if p.Kind == chess.Pawn {
			letter = square.File
		}
		fmt.Fprintf(bw, "%c%c%s\n", colour, letter, square)
	}
	return bw.Flush()
}

// FromBoard lists the pieces on board as placements in row-major order.
func FromBoard(board *chess.Board) []chess.Placement {
	pieces := board.Pieces()
	placements := make([]chess.Placement, 0, len(pieces))
	for _, occ := range pieces {
		placements = append(placements, chess.Placement{
			Colour:   occ.Piece.Colour,
			Kind:     occ.Piece.Kind,
			Position: occ.Position,
		})
	}
	return placements
}
