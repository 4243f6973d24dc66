package game

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chessrules/internal/errors"
)

// Replay plays moves in order on st and stops at the first rejected move.
// The error is a *errors.ReplayError carrying the 1-based ply and the
// move text.
func Replay(st *State, moves []string) error {
	for i, text := range moves {
		if err := st.HandleMove(text); err != nil {
			return &errors.ReplayError{Err: err, PlyNum: i + 1, MoveText: text}
		}
	}
	return nil
}

// ReplayReader reads whitespace separated moves from r and plays them on
// st. Move number tokens such as "1." or "12..." are skipped, as are
// lines starting with '#'. name is used in error messages.
func ReplayReader(st *State, r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	line, ply := 0, 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		for _, field := range strings.Fields(text) {
			if strings.HasSuffix(field, ".") {
				continue
			}
			ply++
			if err := st.HandleMove(field); err != nil {
				return &errors.ReplayError{Err: err, PlyNum: ply, MoveText: field, File: name, Line: line}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return &errors.ReplayError{Err: err, File: name, Line: line}
	}
	return nil
}
