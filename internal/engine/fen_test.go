package engine

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr bool
		checkFn func(*chess.Board, chess.Colour) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board, toMove chess.Colour) bool {
				return b.At(sq("e1")).Is(chess.King, chess.White) &&
					b.At(sq("e8")).Is(chess.King, chess.Black) &&
					b.At(sq("e2")).Is(chess.Pawn, chess.White) &&
					b.At(sq("e7")).Is(chess.Pawn, chess.Black) &&
					toMove == chess.White &&
					b.At(sq("e1")).ShortCastle &&
					b.At(sq("h1")).ShortCastle &&
					b.At(sq("a1")).LongCastle &&
					!b.At(sq("a1")).ShortCastle
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board, toMove chess.Colour) bool {
				return b.At(sq("e4")).Is(chess.Pawn, chess.White) &&
					!b.IsOccupied(sq("e2")) &&
					!b.At(sq("e4")).DoubleStep &&
					b.At(sq("d2")).DoubleStep &&
					toMove == chess.Black
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *chess.Board, _ chess.Colour) bool {
				king := b.At(sq("e1"))
				return !king.ShortCastle && !king.LongCastle &&
					!b.At(sq("h8")).ShortCastle
			},
		},
		{
			name: "right for a missing rook is ignored",
			fen:  "4k3/8/8/8/8/8/8/4K3 w K - 0 1",
			checkFn: func(b *chess.Board, _ chess.Colour) bool {
				return !b.At(sq("e1")).ShortCastle
			},
		},
		{name: "empty string", fen: "", wantErr: true},
		{name: "too few ranks", fen: "8/8/8 w - - 0 1", wantErr: true},
		{name: "short rank", fen: "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", wantErr: true},
		{name: "bad piece", fen: "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", wantErr: true},
		{name: "bad side", fen: "4k3/8/8/8/8/8/8/4K3 x - - 0 1", wantErr: true},
		{name: "bad castling", fen: "4k3/8/8/8/8/8/8/4K3 w Z - 0 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove, err := NewBoardFromFEN(tt.fen)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBoardFromFEN() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !stderrors.Is(err, errors.ErrInvalidFEN) {
					t.Errorf("error %v does not match ErrInvalidFEN", err)
				}
				return
			}
			if tt.checkFn != nil && !tt.checkFn(board, toMove) {
				t.Errorf("NewBoardFromFEN() board check failed")
			}
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	tests := []struct {
		fen  string
		want string
	}{
		{InitialFEN, InitialFEN},
		{
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		},
		{"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 0 1", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 0 1"},
		{"8/8/8/8/8/8/8/4K3 w - - 0 1", "8/8/8/8/8/8/8/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			board, toMove, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if got := BoardToFEN(board, toMove); got != tt.want {
				t.Errorf("BoardToFEN() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestInitialBoardMatchesSetup(t *testing.T) {
	setup := chess.NewBoard()
	setup.SetupInitialPosition()

	if diff := cmp.Diff(setup.Pieces(), NewInitialBoard().Pieces()); diff != "" {
		t.Errorf("initial FEN board differs from SetupInitialPosition (-setup +fen):\n%s", diff)
	}
}
