package ui

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
)

// JSONPosition is a snapshot of a game in JSON format.
type JSONPosition struct {
	FEN           string   `json:"fen"`
	Status        string   `json:"status"`
	Turn          string   `json:"turn"` // "white" or "black"
	InCheck       bool     `json:"inCheck,omitempty"`
	Winner        string   `json:"winner,omitempty"`
	PlyCount      int      `json:"plyCount"`
	Moves         []string `json:"moves,omitempty"`
	CapturedWhite []string `json:"capturedWhite,omitempty"`
	CapturedBlack []string `json:"capturedBlack,omitempty"`
}

// PositionToJSON converts a game view to its JSON snapshot.
func PositionToJSON(v GameView) *JSONPosition {
	moves := v.History()
	jp := &JSONPosition{
		FEN:           v.FEN(),
		Status:        v.Status().String(),
		Turn:          colorName(v.Turn()),
		InCheck:       v.InCheck(),
		PlyCount:      len(moves),
		Moves:         moves,
		CapturedWhite: pieceNames(v.CapturedWhite()),
		CapturedBlack: pieceNames(v.CapturedBlack()),
	}
	if winner, ok := v.Winner(); ok {
		jp.Winner = colorName(winner)
	}
	return jp
}

// WriteJSON writes the snapshot of v as indented JSON.
func WriteJSON(w io.Writer, v GameView) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(PositionToJSON(v))
}

func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func pieceNames(pieces []chess.Piece) []string {
	if len(pieces) == 0 {
		return nil
	}
	names := make([]string, len(pieces))
	for i, p := range pieces {
		names[i] = strings.ToLower(p.Kind.String())
	}
	return names
}
