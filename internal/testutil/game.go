package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/game"
)

// NewGameFromFEN creates a game from fen. It calls t.Fatal if the FEN is
// rejected.
func NewGameFromFEN(t testing.TB, fen string) *game.State {
	t.Helper()
	st, err := game.NewFromFEN(fen)
	if err != nil {
		t.Fatalf("NewFromFEN(%q): %v", fen, err)
	}
	return st
}

// MustPlay plays moves on st in order and calls t.Fatal at the first
// rejected move. Use it for setup moves that are expected to be legal.
func MustPlay(t testing.TB, st *game.State, moves ...string) {
	t.Helper()
	for i, m := range moves {
		if err := st.HandleMove(m); err != nil {
			t.Fatalf("move %d %q: %v", i+1, m, err)
		}
	}
}

// PlayStandard starts a standard game and plays moves on it.
func PlayStandard(t testing.TB, moves ...string) *game.State {
	t.Helper()
	st := game.NewStandard()
	MustPlay(t, st, moves...)
	return st
}

// AssertPieceAt fails unless want stands on square. An empty Piece means
// the square must be empty. Castling and double step flags are ignored.
func AssertPieceAt(t testing.TB, st *game.State, square string, want chess.Piece) {
	t.Helper()
	pos := chess.MustParsePosition(square)
	got, ok := st.PieceAt(pos)
	if want.IsEmpty() {
		if ok {
			t.Errorf("%s: got %v; want empty", square, got)
		}
		return
	}
	if !ok || !got.Is(want.Kind, want.Colour) {
		t.Errorf("%s: got %v; want %v", square, got, want)
	}
}
