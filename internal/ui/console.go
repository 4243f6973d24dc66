package ui

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/errors"
)

// Prompt is printed before each move is read.
const Prompt = "Next move: "

// Player is a game that accepts moves.
type Player interface {
	GameView
	HandleMove(text string) error
}

// Console plays a game in line mode: it prints the board, reads one move
// per line and reports rejected moves until the game ends, the input is
// exhausted or "quit" is entered.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	display config.DisplayConfig
	logger  *log.Logger

	// Verbosity gates the log: rejected moves from config.Normal, every
	// played move from config.Verbose.
	Verbosity int
}

// NewConsole creates a console reading from in and writing to out.
// A nil logger discards diagnostics.
func NewConsole(in io.Reader, out io.Writer, display config.DisplayConfig, logger *log.Logger) *Console {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Console{
		in:        bufio.NewScanner(in),
		out:       out,
		display:   display,
		logger:    logger,
		Verbosity: config.Normal,
	}
}

// Run plays p until it is over or input ends.
func (c *Console) Run(p Player) error {
	for {
		if err := RenderText(c.out, p, c.display); err != nil {
			return err
		}
		if _, over := p.Winner(); over {
			return nil
		}

		fmt.Fprint(c.out, Prompt)
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}

		text := strings.TrimSpace(c.in.Text())
		switch text {
		case "":
			continue
		case "quit", "exit":
			return nil
		}

		if err := p.HandleMove(text); err != nil {
			if c.Verbosity >= config.Normal {
				c.logger.Printf("rejected %q: %v", text, err)
			}
			fmt.Fprintf(c.out, "Error: %s\n", describe(err))
			if stderrors.Is(err, errors.ErrNotInitialized) {
				return err
			}
			continue
		}
		if c.Verbosity >= config.Verbose {
			c.logger.Printf("played %q: %s", text, p.FEN())
		}
	}
}

// describe renders a move error for a player.
func describe(err error) string {
	var moveErr *errors.MoveError
	if stderrors.As(err, &moveErr) && moveErr.Kind == errors.InvalidNotation && moveErr.Err != nil {
		return moveErr.Err.Error()
	}
	return err.Error()
}
