package engine

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules/internal/chess"
)

// oracleFENs have no castling rights, en passant squares or promotions so
// that both generators describe the same set of moves.
var oracleFENs = []string{
	"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
	"rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b - - 1 2",
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
	"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3",
	"6k1/5ppp/8/8/8/8/5PPP/R5K1 b - - 0 1",
}

// legalMoves lists every move of colour that does not leave its own king
// attacked, in long algebraic form.
func legalMoves(board *chess.Board, colour chess.Colour) []string {
	result := []string{}
	for _, occ := range board.Pieces() {
		if occ.Piece.Colour != colour {
			continue
		}
		for _, dst := range PossibleMoves(board, occ.Piece, occ.Position) {
			trial := board.Copy()
			trial.MovePiece(occ.Position, dst)
			if !IsInCheck(trial, colour) {
				result = append(result, occ.Position.String()+dst.String())
			}
		}
	}
	sort.Strings(result)
	return result
}

func oracleMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()
	result := make([]string, 0, len(moves))
	for _, m := range moves {
		result = append(result, m.String())
	}
	sort.Strings(result)
	return result
}

func TestLegalMovesMatchOracle(t *testing.T) {
	for _, fen := range oracleFENs {
		t.Run(fen, func(t *testing.T) {
			board, toMove, err := NewBoardFromFEN(fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			got := legalMoves(board, toMove)
			want := oracleMoves(fen)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("legal moves differ from dragontoothmg (-oracle +engine):\n%s", diff)
			}
		})
	}
}

func TestCheckMatchesOracle(t *testing.T) {
	for _, fen := range append(oracleFENs,
		"4k3/8/8/8/8/8/8/4R1K1 b - - 0 1",
		"4k3/3P4/8/8/8/8/8/6K1 b - - 0 1",
		"4k3/8/3N4/8/8/8/8/6K1 b - - 0 1",
	) {
		t.Run(fen, func(t *testing.T) {
			board, toMove, err := NewBoardFromFEN(fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			oracle := dragontoothmg.ParseFen(fen)
			if got, want := IsInCheck(board, toMove), oracle.OurKingInCheck(); got != want {
				t.Errorf("IsInCheck() = %v; dragontoothmg says %v", got, want)
			}
		})
	}
}
