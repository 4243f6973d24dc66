// chess is a two-player chess game that checks every move against the rules.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/game"
	"github.com/lgbarn/chessrules/internal/placement"
	"github.com/lgbarn/chessrules/internal/ui"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	base, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg, err := applyFlags(base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *saveConfig {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
		os.Exit(0)
	}

	logger, closeLog := setupLogger(cfg)
	defer closeLog()

	st, err := setupGame(cfg, *fenString)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *replayFile != "" {
		if err := replay(os.Stdout, st, cfg, *replayFile, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := play(st, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *exportPos {
		if err := placement.Encode(os.Stdout, placement.FromBoard(st.Board())); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// setupLogger opens cfg.LogFile for appending. Without a log file the
// logger discards everything.
func setupLogger(cfg *config.Config) (*log.Logger, func()) {
	if cfg.LogFile == "" || cfg.Verbosity == config.Quiet {
		return log.New(io.Discard, "", 0), func() {}
	}

	file, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", cfg.LogFile, err)
		os.Exit(1)
	}
	return log.New(file, "chess: ", log.LstdFlags), func() { file.Close() }
}

// setupGame builds the starting position: a FEN string wins over a
// placement file, which wins over the standard placement.
func setupGame(cfg *config.Config, fen string) (*game.State, error) {
	if fen != "" {
		return game.NewFromFEN(fen)
	}

	placements := placement.Standard()
	if cfg.PlacementFile != "" {
		var err error
		if placements, err = placement.Load(cfg.PlacementFile); err != nil {
			return nil, err
		}
	}

	st := game.New()
	if err := st.Initialize(placements); err != nil {
		return nil, err
	}
	return st, nil
}

// replay plays the moves in filename and prints the position reached.
// The position is printed even when a move is rejected.
func replay(w io.Writer, st *game.State, cfg *config.Config, filename string, logger *log.Logger) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return fmt.Errorf("cannot open replay file: %w", err)
	}
	defer file.Close()

	replayErr := game.ReplayReader(st, file, filename)
	if replayErr != nil {
		logger.Printf("replay stopped: %v", replayErr)
	} else if cfg.Verbosity >= config.Verbose {
		logger.Printf("replayed %d moves from %s", len(st.History()), filename)
	}

	if *jsonOutput {
		err = ui.WriteJSON(w, st)
	} else {
		err = ui.RenderText(w, st, cfg.Display)
	}
	if err != nil {
		return err
	}
	if *exportPos {
		if err := placement.Encode(w, placement.FromBoard(st.Board())); err != nil {
			return err
		}
	}
	return replayErr
}

// play runs an interactive game on the terminal board, or on the line
// console when plain mode is set.
func play(st *game.State, cfg *config.Config, logger *log.Logger) error {
	if cfg.Display.Plain {
		console := ui.NewConsole(os.Stdin, os.Stdout, cfg.Display, logger)
		console.Verbosity = cfg.Verbosity
		return console.Run(st)
	}
	return ui.NewTerminal(st, cfg.Display, logger).Run()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game that rejects illegal moves.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves use short algebraic notation:\n")
	fmt.Fprintf(os.Stderr, "  e4 Nf3 exd5 Nbd7 R1e2 O-O O-O-O Qh4+ Qxf7#\n")
	fmt.Fprintf(os.Stderr, "\nPlacement files hold one record per line, e.g. WKe1 or BQd8.\n")
}
