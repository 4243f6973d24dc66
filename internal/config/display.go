package config

import "github.com/lgbarn/chessrules/internal/errors"

// SymbolSet selects how pieces are drawn.
type SymbolSet string

const (
	// Unicode draws chess figurines.
	Unicode SymbolSet = "unicode"
	// Letters draws FEN letters, uppercase for White.
	Letters SymbolSet = "letters"
)

// Valid reports whether s is a known symbol set.
func (s SymbolSet) Valid() bool {
	return s == Unicode || s == Letters
}

// BoardColors holds 256-colour palette indexes for the terminal board.
type BoardColors struct {
	Light int `json:"light"`
	Dark  int `json:"dark"`
	White int `json:"white"`
	Black int `json:"black"`
}

// DisplayConfig holds settings related to drawing the board.
type DisplayConfig struct {
	// Symbols selects figurines or letters.
	Symbols SymbolSet `json:"symbols"`

	// Plain uses the line-mode console instead of the terminal UI.
	Plain bool `json:"plain"`

	// ShowCaptures lists captured pieces under the board.
	ShowCaptures bool `json:"show_captures"`

	Colors BoardColors `json:"colors"`
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Symbols:      Unicode,
		ShowCaptures: true,
		Colors: BoardColors{
			Light: 180,
			Dark:  94,
			White: 255,
			Black: 232,
		},
	}
}

// Validate checks the symbol set and palette indexes.
func (d DisplayConfig) Validate() error {
	if !d.Symbols.Valid() {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown symbol set %q", d.Symbols)
	}
	for _, c := range []int{d.Colors.Light, d.Colors.Dark, d.Colors.White, d.Colors.Black} {
		if c < 0 || c > 255 {
			return errors.Wrapf(errors.ErrInvalidConfig, "colour %d outside the 256-colour palette", c)
		}
	}
	return nil
}
