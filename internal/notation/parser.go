// Package notation parses short algebraic move notation.
//
// The parser is a small state machine that consumes one character per
// state. For ordinary moves it yields the moving piece kind, the
// destination square, an optional single disambiguation character and
// the capture flag. Castling is recognised by matching the castle marker
// "O-O" or "O-O-O" character by character.
//
// Parse is purely syntactic. ParseMove additionally resolves the parsed
// token against a position through a Resolver.
package notation

import (
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// CastleSide identifies a castling token.
type CastleSide int

const (
	NoCastle CastleSide = iota
	ShortCastle
	LongCastle
)

// String returns the notation of the castle side.
func (c CastleSide) String() string {
	switch c {
	case ShortCastle:
		return chess.CastleMarker[:3]
	case LongCastle:
		return chess.CastleMarker
	}
	return ""
}

// Token is the syntactic content of one move string.
type Token struct {
	Kind           chess.PieceKind
	Destination    chess.Position
	Disambiguation byte // file or rank character, 0 if absent
	Capture        bool
	Castle         CastleSide
}

// IsCastle reports whether the token is a castle.
func (t Token) IsCastle() bool {
	return t.Castle != NoCastle
}

// Resolver looks up the concrete move a token describes in the current
// position.
type Resolver interface {
	FindPiecePosition(kind chess.PieceKind, dst chess.Position, disambiguation byte, capture bool) (chess.Position, error)
	FindCastlingMove(short bool) (chess.Move, error)
}

// ParseMove parses s and resolves it to a move with r. Syntax errors are
// returned as *errors.NotationError; resolution errors are returned as
// produced by r.
func ParseMove(r Resolver, s string) (chess.Move, error) {
	tok, err := Parse(s)
	if err != nil {
		return chess.Move{}, err
	}

	if tok.IsCastle() {
		return r.FindCastlingMove(tok.Castle == ShortCastle)
	}

	src, err := r.FindPiecePosition(tok.Kind, tok.Destination, tok.Disambiguation, tok.Capture)
	if err != nil {
		return chess.Move{}, err
	}
	return chess.NewMove(src, tok.Destination), nil
}

type state int

const (
	stateFirst state = iota
	stateSecond
	stateThird
	stateFourth
	stateFifth
	stateDone
)

var ordinals = [...]string{
	stateFirst:  "first",
	stateSecond: "second",
	stateThird:  "third",
	stateFourth: "fourth",
	stateFifth:  "fifth",
}

// parser holds the state threaded between steps.
type parser struct {
	input    string
	next     int
	explicit bool // first character was a piece letter
	first    byte
	castling bool
	destFile byte
	done     bool
	tok      Token
}

// Parse parses s into a Token without looking at any position. Trailing
// check and checkmate markers are ignored.
func Parse(s string) (Token, error) {
	p := &parser{input: strings.TrimRight(s, string([]byte{chess.CheckMarker, chess.CheckmateMarker}))}

	var err error
	for st := stateFirst; st != stateDone; {
		st, err = p.step(st)
		if err != nil {
			return Token{}, err
		}
	}
	if !p.done {
		panic("notation: parser stopped without a result")
	}
	if p.next < len(p.input) {
		return Token{}, invalidCharacter(p.input[p.next])
	}
	return p.tok, nil
}

func (p *parser) step(st state) (state, error) {
	switch st {
	case stateFirst:
		return p.parseFirst()
	case stateSecond:
		return p.parseSecond()
	case stateThird:
		return p.parseThird()
	case stateFourth:
		return p.parseFourth()
	case stateFifth:
		return p.parseFifth()
	}
	panic("notation: unknown parser state")
}

// read returns the next character, or false at end of input.
func (p *parser) read() (byte, bool) {
	if p.next >= len(p.input) {
		return 0, false
	}
	c := p.input[p.next]
	p.next++
	return c, true
}

// require reads the next character, failing with a missing character
// error named after st.
func (p *parser) require(st state) (byte, error) {
	c, ok := p.read()
	if !ok {
		return 0, &errors.NotationError{Kind: errors.MissingCharacter, Ordinal: ordinals[st]}
	}
	return c, nil
}

func (p *parser) parseFirst() (state, error) {
	c, ok := p.read()
	if !ok {
		return stateDone, &errors.NotationError{Kind: errors.EmptyInput}
	}
	p.first = c

	if c == chess.CastleMarker[0] {
		p.castling = true
		return stateSecond, nil
	}

	kind, ok := chess.KindFromLetter(c)
	if !ok {
		return stateDone, &errors.NotationError{Kind: errors.InvalidPiece, Char: c}
	}
	p.tok.Kind = kind
	if chess.IsFile(c) {
		p.destFile = c
	} else {
		p.explicit = true
	}
	return stateSecond, nil
}

func (p *parser) parseSecond() (state, error) {
	c, err := p.require(stateSecond)
	if err != nil {
		return stateDone, err
	}

	switch {
	case p.castling:
		return p.matchCastle(c, 1, stateThird)
	case isDigit(c):
		if p.destFile != 0 {
			return stateDone, p.finish(c)
		}
		p.tok.Disambiguation = c
	case c == chess.CaptureMarker:
		p.tok.Capture = true
		if !p.explicit {
			p.tok.Disambiguation = p.first
		}
		p.destFile = 0
	case len(p.input) > 3 && p.explicit && chess.IsFile(c):
		p.tok.Disambiguation = c
	case isLower(c):
		p.destFile = c
	default:
		return stateDone, invalidCharacter(c)
	}
	return stateThird, nil
}

func (p *parser) parseThird() (state, error) {
	c, err := p.require(stateThird)
	if err != nil {
		return stateDone, err
	}

	switch {
	case p.castling:
		return p.matchCastle(c, 2, stateFourth)
	case c == chess.CaptureMarker:
		p.tok.Capture = true
	case isDigit(c) && p.explicit:
		return stateDone, p.finish(c)
	case isLower(c):
		p.destFile = c
	default:
		return stateDone, invalidCharacter(c)
	}
	return stateFourth, nil
}

func (p *parser) parseFourth() (state, error) {
	if p.castling {
		c, ok := p.read()
		if !ok {
			p.tok.Castle = ShortCastle
			p.done = true
			return stateDone, nil
		}
		return p.matchCastle(c, 3, stateFifth)
	}

	c, err := p.require(stateFourth)
	if err != nil {
		return stateDone, err
	}

	switch {
	case isDigit(c) && (p.tok.Capture || p.tok.Disambiguation != 0):
		return stateDone, p.finish(c)
	case isLower(c):
		p.destFile = c
	default:
		return stateDone, invalidCharacter(c)
	}
	return stateFifth, nil
}

func (p *parser) parseFifth() (state, error) {
	c, err := p.require(stateFifth)
	if err != nil {
		return stateDone, err
	}

	if p.castling {
		if c != chess.CastleMarker[4] {
			return stateDone, invalidCharacter(c)
		}
		p.tok.Castle = LongCastle
		p.done = true
		return stateDone, nil
	}
	if !isDigit(c) {
		return stateDone, &errors.NotationError{Kind: errors.MissingDestinationRank}
	}
	return stateDone, p.finish(c)
}

// matchCastle checks c against the castle marker at index i.
func (p *parser) matchCastle(c byte, i int, next state) (state, error) {
	if c != chess.CastleMarker[i] {
		return stateDone, invalidCharacter(c)
	}
	return next, nil
}

// finish builds the destination square from the pending file and rank.
func (p *parser) finish(rank byte) error {
	if p.destFile == 0 {
		return &errors.NotationError{Kind: errors.MissingDestinationFile}
	}
	dst, err := chess.Square{File: p.destFile, Rank: rank}.Position()
	if err != nil {
		return &errors.NotationError{Kind: errors.InvalidSquare, Err: err}
	}
	p.tok.Destination = dst
	p.done = true
	return nil
}

func invalidCharacter(c byte) error {
	return &errors.NotationError{Kind: errors.InvalidCharacter, Char: c}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}
