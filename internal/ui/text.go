// Package ui draws a game for people: a plain text board for line mode,
// a JSON snapshot for tooling and an interactive terminal view.
package ui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/game"
)

// BlankSquare is drawn for empty squares in text output.
const BlankSquare = '_'

// GameView is the read-only view of a game the renderers need.
// *game.State implements it.
type GameView interface {
	PieceAt(pos chess.Position) (chess.Piece, bool)
	Status() game.Status
	Turn() chess.Colour
	Winner() (chess.Colour, bool)
	InCheck() bool
	CapturedWhite() []chess.Piece
	CapturedBlack() []chess.Piece
	History() []string
	FEN() string
}

// Symbol returns the character drawn for piece in the given set.
func Symbol(piece chess.Piece, set config.SymbolSet) rune {
	if piece.IsEmpty() {
		return BlankSquare
	}
	if set == config.Letters {
		return rune(piece.Letter())
	}
	return piece.Symbol()
}

// StatusLine describes whose turn it is, a check, or the result.
func StatusLine(v GameView) string {
	if winner, ok := v.Winner(); ok {
		return fmt.Sprintf("Checkmate. %v wins", winner)
	}
	line := fmt.Sprintf("%v to move", v.Turn())
	if v.InCheck() {
		line += " (check)"
	}
	return line
}

// RenderText writes the board with rank labels down the left and file
// labels underneath, followed by the status line and, if enabled, the
// captured pieces of each side.
func RenderText(w io.Writer, v GameView, display config.DisplayConfig) error {
	bw := bufio.NewWriter(w)

	for row := 0; row < chess.BoardSize; row++ {
		fmt.Fprintf(bw, "%d ", chess.BoardSize-row)
		for col := 0; col < chess.BoardSize; col++ {
			piece, _ := v.PieceAt(chess.Position{Row: row, Col: col})
			fmt.Fprintf(bw, "%c ", Symbol(piece, display.Symbols))
		}
		bw.WriteByte('\n')
	}

	bw.WriteString("  ")
	for file := byte(chess.FirstFile); file <= chess.LastFile; file++ {
		fmt.Fprintf(bw, "%c ", file)
	}
	bw.WriteByte('\n')

	fmt.Fprintln(bw, StatusLine(v))
	if display.ShowCaptures {
		writeCaptured(bw, "White lost", v.CapturedWhite(), display.Symbols)
		writeCaptured(bw, "Black lost", v.CapturedBlack(), display.Symbols)
	}
	return bw.Flush()
}

func writeCaptured(w io.Writer, label string, pieces []chess.Piece, set config.SymbolSet) {
	if len(pieces) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:", label)
	for _, p := range pieces {
		fmt.Fprintf(w, " %c", Symbol(p, set))
	}
	fmt.Fprintln(w)
}
