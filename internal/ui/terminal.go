package ui

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
)

// Board cells are two characters wide so squares look square.
const cellWidth = 2

// labelWidth is the space left of the board for rank labels.
const labelWidth = 2

// Terminal is the interactive board view: the board on top, a status
// panel and a move input line below. Escape quits.
type Terminal struct {
	app     *tview.Application
	Box     *tview.Box
	status  *tview.TextView
	input   *tview.InputField
	player  Player
	display config.DisplayConfig
	logger  *log.Logger
	lastErr string
	styles  [4]tcell.Color // light, dark, white, black
}

// NewTerminal creates the view for p. A nil logger discards diagnostics.
func NewTerminal(p Player, display config.DisplayConfig, logger *log.Logger) *Terminal {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	t := &Terminal{
		app:     tview.NewApplication(),
		Box:     tview.NewBox(),
		status:  tview.NewTextView(),
		input:   tview.NewInputField(),
		player:  p,
		display: display,
		logger:  logger,
		styles: [4]tcell.Color{
			tcell.PaletteColor(display.Colors.Light),
			tcell.PaletteColor(display.Colors.Dark),
			tcell.PaletteColor(display.Colors.White),
			tcell.PaletteColor(display.Colors.Black),
		},
	}

	t.Box.SetBorder(true).SetTitle(" chess ")
	t.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		t.drawBoard(screen, x, y)
		return x, y, width, height
	})

	t.status.SetBorder(true)
	t.status.SetTitle(" Status ")
	t.status.SetTitleAlign(tview.AlignLeft)

	t.input.SetLabel(Prompt)
	t.input.SetFieldWidth(10)
	t.input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			t.submit(t.input.GetText())
			t.input.SetText("")
		case tcell.KeyEscape:
			t.app.Stop()
		}
	})

	t.refreshStatus()
	return t
}

// Run starts the terminal application and blocks until it quits.
func (t *Terminal) Run() error {
	layout := tview.NewFlex().SetDirection(tview.FlexRow)
	layout.AddItem(t.Box, chess.BoardSize+3, 0, false)
	layout.AddItem(t.status, 5, 0, false)
	layout.AddItem(t.input, 1, 0, true)
	return t.app.SetRoot(layout, true).SetFocus(t.input).Run()
}

// submit plays one move and refreshes the status panel.
func (t *Terminal) submit(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	t.lastErr = ""
	if err := t.player.HandleMove(text); err != nil {
		t.logger.Printf("rejected %q: %v", text, err)
		t.lastErr = describe(err)
	}
	t.refreshStatus()
}

// statusText is the content of the status panel.
func (t *Terminal) statusText() string {
	var sb strings.Builder
	sb.WriteString(StatusLine(t.player))
	if t.display.ShowCaptures {
		for _, side := range []struct {
			label  string
			pieces []chess.Piece
		}{
			{"White lost", t.player.CapturedWhite()},
			{"Black lost", t.player.CapturedBlack()},
		} {
			if len(side.pieces) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "\n%s:", side.label)
			for _, p := range side.pieces {
				fmt.Fprintf(&sb, " %c", Symbol(p, t.display.Symbols))
			}
		}
	}
	if t.lastErr != "" {
		fmt.Fprintf(&sb, "\nError: %s", t.lastErr)
	}
	return sb.String()
}

func (t *Terminal) refreshStatus() {
	t.status.SetText(t.statusText())
}

// drawBoard draws the squares with rank labels on the left and file
// labels underneath, starting at the box's inner top-left corner.
func (t *Terminal) drawBoard(screen tcell.Screen, x, y int) {
	left, top := x+1+labelWidth, y+1
	style := tcell.StyleDefault

	for row := 0; row < chess.BoardSize; row++ {
		screen.SetContent(x+1, top+row, rune('0'+chess.BoardSize-row), nil, style)
		for col := 0; col < chess.BoardSize; col++ {
			bg := t.styles[0]
			if (row+col)%2 == 1 {
				bg = t.styles[1]
			}
			cell := style.Background(bg)

			r := ' '
			if piece, ok := t.player.PieceAt(chess.Position{Row: row, Col: col}); ok {
				r = Symbol(piece, t.display.Symbols)
				fg := t.styles[3]
				if piece.Colour == chess.White {
					fg = t.styles[2]
				}
				cell = cell.Foreground(fg)
			}
			screen.SetContent(left+col*cellWidth, top+row, r, nil, cell)
			screen.SetContent(left+col*cellWidth+1, top+row, ' ', nil, cell)
		}
	}

	for col := 0; col < chess.BoardSize; col++ {
		screen.SetContent(left+col*cellWidth, top+chess.BoardSize, rune(chess.FirstFile+col), nil, style)
	}
}
