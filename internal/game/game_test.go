package game_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/game"
	"github.com/lgbarn/chessrules/internal/testutil"
)

func pos(name string) chess.Position {
	return chess.MustParsePosition(name)
}

func TestOpeningSequence(t *testing.T) {
	st := game.NewStandard()

	tests := []struct {
		move  string
		piece chess.Piece
		from  string
		to    string
	}{
		{"e3", chess.W(chess.Pawn), "e2", "e3"},
		{"e6", chess.B(chess.Pawn), "e7", "e6"},
		{"Bb5", chess.W(chess.Bishop), "f1", "b5"},
		{"Nf6", chess.B(chess.Knight), "g8", "f6"},
		{"Bxd7", chess.W(chess.Bishop), "b5", "d7"},
		{"Qxd7", chess.B(chess.Queen), "d8", "d7"},
		{"d4", chess.W(chess.Pawn), "d2", "d4"},
		{"Bc5", chess.B(chess.Bishop), "f8", "c5"},
		{"dxc5", chess.W(chess.Pawn), "d4", "c5"},
		{"Na6", chess.B(chess.Knight), "b8", "a6"},
		{"Nc3", chess.W(chess.Knight), "b1", "c3"},
		{"Ne4", chess.B(chess.Knight), "f6", "e4"},
		{"Qxd7+", chess.W(chess.Queen), "d1", "d7"},
		{"Kxd7", chess.B(chess.King), "e8", "d7"},
		{"h4", chess.W(chess.Pawn), "h2", "h4"},
		{"Naxc5", chess.B(chess.Knight), "a6", "c5"},
		{"Rh2", chess.W(chess.Rook), "h1", "h2"},
	}

	for _, tt := range tests {
		if err := st.HandleMove(tt.move); err != nil {
			t.Fatalf("HandleMove(%q) error: %v", tt.move, err)
		}
		testutil.AssertPieceAt(t, st, tt.from, chess.Piece{})
		testutil.AssertPieceAt(t, st, tt.to, tt.piece)
	}

	testutil.AssertEqual(t, st.Status(), game.BlackToMove)
	testutil.AssertEqual(t, st.KingPosition(chess.Black), pos("d7"))
	testutil.AssertEqual(t, len(st.History()), len(tests))
	testutil.AssertPieceAt(t, st, "e4", chess.B(chess.Knight))

	var capturedBlack []chess.PieceKind
	for _, p := range st.CapturedBlack() {
		capturedBlack = append(capturedBlack, p.Kind)
	}
	testutil.AssertEqual(t, capturedBlack, []chess.PieceKind{chess.Pawn, chess.Bishop, chess.Queen})

	var capturedWhite []chess.PieceKind
	for _, p := range st.CapturedWhite() {
		capturedWhite = append(capturedWhite, p.Kind)
	}
	testutil.AssertEqual(t, capturedWhite, []chess.PieceKind{chess.Bishop, chess.Queen, chess.Pawn})
}

func TestMoveErrors(t *testing.T) {
	tests := []struct {
		name   string
		setup  []string
		move   string
		kind   errors.MoveKind
		reason string
	}{
		{"no king reaches d5", nil, "Kd5", errors.NoPieceAvailable, ""},
		{"no pawn attacks c5", []string{"e4", "c5"}, "exc5", errors.NoPieceAvailable, ""},
		{"two knights reach d2", []string{"e4", "c5", "d4", "cxd4", "Nf3", "e5"}, "Nd2", errors.MoreThanOnePieceAvailable, ""},
		{"capture on empty square", nil, "exd3", errors.InvalidCapture, engine.ReasonCaptureEmpty},
		{"capture own piece", nil, "Kxe2", errors.InvalidCapture, engine.ReasonCaptureOwnColour},
		{"own piece on destination", nil, "Ke2", errors.SquareOccupied, ""},
		{"knight cannot jump there", nil, "Nd4", errors.NoPieceAvailable, ""},
		{"double step blocked", []string{"Nc3", "e5"}, "c4", errors.NoPieceAvailable, ""},
		{"quiet move onto enemy piece", []string{"e4", "e5"}, "e5", errors.InvalidNotation, ""},
		{"double step after moving", []string{"e3", "e6"}, "e5", errors.NoPieceAvailable, ""},
		{"castle through pieces", nil, "O-O", errors.InvalidCastle, "this move is not allowed"},
		{"bad notation", nil, "Le5", errors.InvalidNotation, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testutil.PlayStandard(t, tt.setup...)
			before := st.FEN()

			err := st.HandleMove(tt.move)
			testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
			moveErr := testutil.AssertMoveError(t, err, tt.kind)
			if moveErr != nil && moveErr.Reason != tt.reason {
				t.Errorf("Reason = %q; want %q", moveErr.Reason, tt.reason)
			}
			testutil.AssertEqual(t, st.FEN(), before, "rejected move changed the position")
		})
	}
}

func TestNotationErrorsAreWrapped(t *testing.T) {
	tests := []struct {
		move string
		kind errors.NotationKind
	}{
		{"e", errors.MissingCharacter},
		{"eK", errors.InvalidCharacter},
		{"Kx5", errors.MissingDestinationFile},
		{"Le5", errors.InvalidPiece},
	}

	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			err := game.NewStandard().HandleMove(tt.move)
			testutil.AssertMoveError(t, err, errors.InvalidNotation)
			testutil.AssertNotationError(t, err, tt.kind)
			testutil.AssertErrorIs(t, err, errors.ErrParseFailure)
		})
	}
}

func TestMissingCaptureMarker(t *testing.T) {
	st := testutil.PlayStandard(t, "e4", "d5", "Nc3", "Nf6")

	err := st.HandleMove("Nd5")
	testutil.AssertMoveError(t, err, errors.InvalidNotation)
	testutil.AssertNotationError(t, err, errors.MissingCaptureMarker)

	testutil.MustPlay(t, st, "Nxd5")
	testutil.AssertPieceAt(t, st, "d5", chess.W(chess.Knight))
}

func TestDisambiguation(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		from string
		kind errors.MoveKind
		fail bool
	}{
		{"rank picks lower knight", "4k3/8/8/1N6/8/1N6/8/4K3 w - - 0 1", "N3d4", "b3", 0, false},
		{"rank picks upper knight", "4k3/8/8/1N6/8/1N6/8/4K3 w - - 0 1", "N5d4", "b5", 0, false},
		{"same file is ambiguous", "4k3/8/8/1N6/8/1N6/8/4K3 w - - 0 1", "Nbd4", "", errors.MoreThanOnePieceAvailable, true},
		{"file picks knight", "4k3/8/8/8/8/2N1N3/8/4K3 w - - 0 1", "Ncd5", "c3", 0, false},
		{"missing disambiguation", "4k3/8/8/8/8/2N1N3/8/4K3 w - - 0 1", "Nd5", "", errors.MoreThanOnePieceAvailable, true},
		{"unmatched disambiguation", "4k3/8/8/8/8/2N1N3/8/4K3 w - - 0 1", "Nad5", "", errors.MoreThanOnePieceAvailable, true},
		{"single match ignores hint", "4k3/8/8/8/8/2N5/8/4K3 w - - 0 1", "Ned5", "c3", 0, false},
		{"rook rank disambiguation", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "R1a3", "a1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testutil.NewGameFromFEN(t, tt.fen)
			err := st.HandleMove(tt.move)
			if tt.fail {
				testutil.AssertMoveError(t, err, tt.kind)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertPieceAt(t, st, tt.from, chess.Piece{})
		})
	}
}

func TestCastling(t *testing.T) {
	const fen = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	t.Run("both sides", func(t *testing.T) {
		st := testutil.NewGameFromFEN(t, fen)
		testutil.MustPlay(t, st, "O-O", "O-O-O")

		testutil.AssertPieceAt(t, st, "g1", chess.W(chess.King))
		testutil.AssertPieceAt(t, st, "f1", chess.W(chess.Rook))
		testutil.AssertPieceAt(t, st, "h1", chess.Piece{})
		testutil.AssertPieceAt(t, st, "c8", chess.B(chess.King))
		testutil.AssertPieceAt(t, st, "d8", chess.B(chess.Rook))
		testutil.AssertPieceAt(t, st, "a8", chess.Piece{})
		testutil.AssertEqual(t, st.KingPosition(chess.White), pos("g1"))
		testutil.AssertEqual(t, st.KingPosition(chess.Black), pos("c8"))
		testutil.AssertEqual(t, st.FEN(), "2kr3r/8/8/8/8/8/8/R4RK1 w - - 0 1")
	})

	t.Run("through attacked square", func(t *testing.T) {
		st := testutil.NewGameFromFEN(t, "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1")
		testutil.AssertMoveError(t, st.HandleMove("O-O"), errors.KingWouldBeInCheck)
		testutil.MustPlay(t, st, "O-O-O")
		testutil.AssertPieceAt(t, st, "c1", chess.W(chess.King))
	})

	t.Run("out of check", func(t *testing.T) {
		st := testutil.NewGameFromFEN(t, "4k3/4r3/8/8/8/8/8/R3K2R w KQ - 0 1")
		testutil.AssertTrue(t, st.InCheck())
		testutil.AssertMoveError(t, st.HandleMove("O-O"), errors.KingWouldBeInCheck)
		testutil.AssertMoveError(t, st.HandleMove("O-O-O"), errors.KingWouldBeInCheck)
	})

	revoked := []struct {
		name  string
		moves []string
		short string
		long  string
	}{
		{"rook moved and returned", []string{"Rg1", "Rb8", "Rh1", "Ra8"}, "this move is not allowed", ""},
		{"king moved and returned", []string{"Kf1", "Rb8", "Ke1", "Ra8"}, "this move is not allowed", "this move is not allowed"},
	}
	for _, tt := range revoked {
		t.Run(tt.name, func(t *testing.T) {
			st := testutil.NewGameFromFEN(t, fen)
			testutil.MustPlay(t, st, tt.moves...)

			moveErr := testutil.AssertMoveError(t, st.HandleMove("O-O"), errors.InvalidCastle)
			if moveErr != nil {
				testutil.AssertEqual(t, moveErr.Reason, tt.short)
			}
			err := st.HandleMove("O-O-O")
			if tt.long == "" {
				testutil.AssertNoError(t, err)
				return
			}
			moveErr = testutil.AssertMoveError(t, err, errors.InvalidCastle)
			if moveErr != nil {
				testutil.AssertEqual(t, moveErr.Reason, tt.long)
			}
		})
	}

	t.Run("pieces not at home", func(t *testing.T) {
		st := testutil.NewGameFromFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
		moveErr := testutil.AssertMoveError(t, st.HandleMove("O-O"), errors.InvalidCastle)
		if moveErr != nil {
			testutil.AssertContains(t, moveErr.Reason, "rook")
		}

		st = testutil.NewGameFromFEN(t, "4k3/8/8/8/8/8/8/3K3R w - - 0 1")
		moveErr = testutil.AssertMoveError(t, st.HandleMove("O-O"), errors.InvalidCastle)
		if moveErr != nil {
			testutil.AssertContains(t, moveErr.Reason, "king")
		}
	})
}

func TestPinnedPiece(t *testing.T) {
	st := testutil.NewGameFromFEN(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")

	testutil.AssertMoveError(t, st.HandleMove("Bd3"), errors.KingWouldBeInCheck)
	testutil.AssertMoveError(t, st.HandleMove("Ke3"), errors.NoPieceAvailable)
	testutil.MustPlay(t, st, "Kd2")
	testutil.AssertEqual(t, st.KingPosition(chess.White), pos("d2"))
}

func TestCheckmate(t *testing.T) {
	tests := []struct {
		name   string
		moves  []string
		winner chess.Colour
	}{
		{"fool's mate", []string{"f3", "e5", "g4", "Qh4#"}, chess.Black},
		{"scholar's mate", []string{"e4", "e5", "Qh5", "Nc6", "Bc4", "Nf6", "Qxf7#"}, chess.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testutil.PlayStandard(t, tt.moves...)

			testutil.AssertEqual(t, st.Status(), game.GameOver)
			testutil.AssertTrue(t, st.InCheck())
			winner, ok := st.Winner()
			testutil.AssertTrue(t, ok)
			testutil.AssertEqual(t, winner, tt.winner)
			testutil.AssertErrorIs(t, st.HandleMove("a3"), errors.ErrGameOver)
			testutil.AssertErrorIs(t, st.HandleMove("a6"), errors.ErrGameOver)
		})
	}
}

func TestBackRank(t *testing.T) {
	st := testutil.NewGameFromFEN(t, "6k1/1b3ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	testutil.MustPlay(t, st, "Ra8+")
	testutil.AssertEqual(t, st.Status(), game.BlackToMove)
	testutil.AssertTrue(t, st.InCheck())
	testutil.MustPlay(t, st, "Bxa8")
	testutil.AssertTrue(t, !st.InCheck())

	st = testutil.NewGameFromFEN(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	testutil.MustPlay(t, st, "Ra8#")
	testutil.AssertEqual(t, st.Status(), game.GameOver)
	testutil.AssertEqual(t, st.FEN(), "R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1")
}

func TestCheckMatchesOracle(t *testing.T) {
	games := [][]string{
		{"e4", "e5", "Qh5", "Nc6", "Bc4", "Nf6", "Qxf7#"},
		{"d4", "e5", "dxe5", "Bb4+", "c3", "Ba5", "Qd4"},
		{"f3", "e5", "g4", "Qh4#"},
	}

	for _, moves := range games {
		t.Run(strings.Join(moves, " "), func(t *testing.T) {
			st := game.NewStandard()
			for _, m := range moves {
				testutil.MustPlay(t, st, m)
				oracle := dragontoothmg.ParseFen(st.FEN())
				testutil.AssertEqual(t, st.InCheck(), oracle.OurKingInCheck(), "after %s", m)
				mated := oracle.OurKingInCheck() && len(oracle.GenerateLegalMoves()) == 0
				testutil.AssertEqual(t, st.Status() == game.GameOver, mated, "after %s", m)
			}
		})
	}
}

func TestInitialize(t *testing.T) {
	kings := []chess.Placement{
		{Colour: chess.White, Kind: chess.King, Position: pos("e1")},
		{Colour: chess.Black, Kind: chess.King, Position: pos("e8")},
	}

	t.Run("valid", func(t *testing.T) {
		st := game.New()
		placements := append([]chess.Placement{
			{Colour: chess.White, Kind: chess.Rook, Position: pos("h1")},
			{Colour: chess.White, Kind: chess.Pawn, Position: pos("a2")},
		}, kings...)
		testutil.AssertNoError(t, st.Initialize(placements))
		testutil.AssertEqual(t, st.FEN(), "4k3/8/8/8/8/8/P7/4K2R w K - 0 1")
		testutil.MustPlay(t, st, "a4", "Kd8", "O-O")
	})

	tests := []struct {
		name       string
		placements []chess.Placement
	}{
		{"no pieces", nil},
		{"missing black king", kings[:1]},
		{"two white kings", append([]chess.Placement{{Colour: chess.White, Kind: chess.King, Position: pos("a1")}}, kings...)},
		{"square used twice", append([]chess.Placement{{Colour: chess.White, Kind: chess.Queen, Position: pos("e1")}}, kings...)},
		{"off the board", append([]chess.Placement{{Colour: chess.White, Kind: chess.Queen, Position: chess.Position{Row: 8, Col: 0}}}, kings...)},
		{"no kind", append([]chess.Placement{{Colour: chess.White, Position: pos("d4")}}, kings...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertErrorIs(t, game.New().Initialize(tt.placements), errors.ErrInvalidPlacement)
		})
	}
}

func TestNotInitialized(t *testing.T) {
	testutil.AssertErrorIs(t, game.New().HandleMove("e4"), errors.ErrNotInitialized)
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 1",
		"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			testutil.AssertEqual(t, testutil.NewGameFromFEN(t, fen).FEN(), fen)
		})
	}

	_, err := game.NewFromFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestReplay(t *testing.T) {
	st := game.NewStandard()
	testutil.AssertNoError(t, game.Replay(st, []string{"e4", "e5", "Nf3"}))
	testutil.AssertEqual(t, st.Status(), game.BlackToMove)

	err := game.Replay(game.NewStandard(), []string{"e4", "e5", "Ke2", "Ke3"})
	var replayErr *errors.ReplayError
	if !stderrors.As(err, &replayErr) {
		t.Fatalf("Replay() error = %v; want *ReplayError", err)
	}
	testutil.AssertEqual(t, replayErr.PlyNum, 4)
	testutil.AssertEqual(t, replayErr.MoveText, "Ke3")
	testutil.AssertMoveError(t, err, errors.NoPieceAvailable)
}

func TestReplayReader(t *testing.T) {
	input := "# opening\n1. e4 e5\n2. Nf3 Nc6\n\n3. Bb5 Nf3\n"

	err := game.ReplayReader(game.NewStandard(), strings.NewReader(input), "ruy.txt")
	var replayErr *errors.ReplayError
	if !stderrors.As(err, &replayErr) {
		t.Fatalf("ReplayReader() error = %v; want *ReplayError", err)
	}
	testutil.AssertEqual(t, replayErr.PlyNum, 6)
	testutil.AssertEqual(t, replayErr.Line, 5)
	testutil.AssertContains(t, err.Error(), `ruy.txt:5, ply 6, move "Nf3"`)

	st := game.NewStandard()
	testutil.AssertNoError(t, game.ReplayReader(st, strings.NewReader("1. f3 e5 2. g4 Qh4#"), "fool"))
	testutil.AssertEqual(t, st.Status(), game.GameOver)
}
