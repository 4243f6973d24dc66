// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules/internal/config"
)

var (
	// Setup options
	configFile    = flag.String("config", "", "Configuration file (default: search the XDG config dirs)")
	placementFile = flag.String("placement", "", "Initial placement file (default: standard position)")
	fenString     = flag.String("fen", "", "Start from a FEN position instead of a placement")
	saveConfig    = flag.Bool("save-config", false, "Write the effective configuration to the user config dir and exit")

	// Non-interactive modes
	replayFile = flag.String("replay", "", "Play the moves in this file and print the final position")
	jsonOutput = flag.Bool("json", false, "Print the final position of -replay as JSON")
	exportPos  = flag.Bool("export", false, "Print the final position as placement records")

	// Display options
	plainMode = flag.Bool("plain", false, "Use the line-mode console instead of the terminal board")
	symbols   = flag.String("symbols", "", "Piece symbols: unicode or letters")

	// Diagnostics
	logFile   = flag.String("log", "", "Write diagnostics to this file")
	verbosity = flag.Int("v", -1, "Verbosity: 0 quiet, 1 rejected moves, 2 every move")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overrides cfg with any flags given on the command line and
// returns the validated result. cfg itself is not modified.
func applyFlags(cfg *config.Config) (*config.Config, error) {
	b := config.From(cfg)
	if *placementFile != "" {
		b.WithPlacementFile(*placementFile)
	}
	if *plainMode {
		b.WithPlain(true)
	}
	if *symbols != "" {
		b.WithSymbols(config.SymbolSet(*symbols))
	}
	if *logFile != "" {
		b.WithLogFile(*logFile)
	}
	if *verbosity >= 0 {
		b.WithVerbosity(*verbosity)
	}
	return b.Build()
}

// loadConfig reads -config when given, otherwise the user's config file.
func loadConfig() (*config.Config, error) {
	if *configFile != "" {
		return config.LoadFile(*configFile)
	}
	return config.Load()
}
