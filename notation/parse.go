package notation

import (
	"fmt"
	"math/bits"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/pregame/game"
)

// Practical bounds on atom magnitude. Integer trees grow linearly and
// nimber trees exponentially with the index, so unbounded atoms would let
// a short input demand gigabytes.
const (
	maxIntAtom = 4096
	maxNimAtom = 12
)

// ParseError reports a syntax error and the byte offset it occurred at in
// the normalized input.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("notation: offset %d: %s", e.Offset, e.Message)
}

// Parse reads a game in bracket notation. Input is normalized to NFC
// before scanning, so error offsets refer to the normalized bytes.
func Parse(input string) (*game.Game, error) {
	p := &parser{input: norm.NFC.String(input)}
	g, err := p.parseGame()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, p.errorf("trailing input after game")
	}
	return g, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{Offset: p.pos, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseGame() (*game.Game, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, p.errorf("unexpected end of input, want a game")
	}
	if p.input[p.pos] == '{' {
		return p.parseBraces()
	}
	return p.parseAtom()
}

func (p *parser) parseBraces() (*game.Game, error) {
	p.pos++ // consume {
	left, err := p.parseOptions('|')
	if err != nil {
		return nil, err
	}
	p.pos++ // consume |
	right, err := p.parseOptions('}')
	if err != nil {
		return nil, err
	}
	p.pos++ // consume }
	return game.New(left, right), nil
}

// parseOptions reads a possibly empty comma-separated list of games,
// stopping before term without consuming it.
func (p *parser) parseOptions(term byte) ([]*game.Game, error) {
	var opts []*game.Game
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == term {
		return opts, nil
	}
	for {
		g, err := p.parseGame()
		if err != nil {
			return nil, err
		}
		opts = append(opts, g)
		p.skipSpace()
		if p.pos >= len(p.input) {
			return nil, p.errorf("unexpected end of input, want %q or \",\"", string(term))
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
		case term:
			return opts, nil
		default:
			r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
			return nil, p.errorf("unexpected %q, want %q or \",\"", r, string(term))
		}
	}
}

func (p *parser) parseAtom() (*game.Game, error) {
	switch c := p.input[p.pos]; {
	case c == '*':
		return p.parseNimber()
	case c == '^':
		p.pos++
		return game.Up(), nil
	case c == 'v':
		p.pos++
		return game.Down(), nil
	case c == '-' || isDigit(c):
		return p.parseNumber()
	default:
		r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
		return nil, p.errorf("unexpected %q, want a game", r)
	}
}

func (p *parser) parseNimber() (*game.Game, error) {
	p.pos++ // consume *
	if p.pos >= len(p.input) || !isDigit(p.input[p.pos]) {
		return game.Star(), nil
	}
	start := p.pos
	n, err := p.scanInt()
	if err != nil {
		return nil, err
	}
	if n > maxNimAtom {
		return nil, &ParseError{
			Offset:  start,
			Message: fmt.Sprintf("nimber index %d exceeds the supported maximum %d", n, maxNimAtom),
		}
	}
	return game.Nim(uint(n)), nil
}

func (p *parser) parseNumber() (*game.Game, error) {
	start := p.pos
	neg := false
	if p.input[p.pos] == '-' {
		neg = true
		p.pos++
		if p.pos >= len(p.input) || !isDigit(p.input[p.pos]) {
			return nil, p.errorf("want digits after \"-\"")
		}
	}
	num, err := p.scanInt()
	if err != nil {
		return nil, err
	}
	if num > maxIntAtom {
		return nil, &ParseError{
			Offset:  start,
			Message: fmt.Sprintf("integer magnitude %d exceeds the supported maximum %d", num, maxIntAtom),
		}
	}
	if neg {
		num = -num
	}

	if p.pos >= len(p.input) || p.input[p.pos] != '/' {
		return game.Int(num), nil
	}
	p.pos++ // consume /
	denomStart := p.pos
	if p.pos >= len(p.input) || !isDigit(p.input[p.pos]) {
		return nil, p.errorf("want digits after \"/\"")
	}
	denom, err := p.scanInt()
	if err != nil {
		return nil, err
	}
	if denom == 0 || denom&(denom-1) != 0 || denom > maxIntAtom {
		return nil, &ParseError{
			Offset:  denomStart,
			Message: fmt.Sprintf("denominator %d must be a power of two between 1 and %d", denom, maxIntAtom),
		}
	}
	return game.Dyadic(num, uint(bits.TrailingZeros64(uint64(denom)))), nil
}

// scanInt consumes a run of digits and returns its value.
func (p *parser) scanInt() (int64, error) {
	start := p.pos
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}
	n, err := strconv.ParseInt(p.input[start:p.pos], 10, 64)
	if err != nil {
		return 0, &ParseError{Offset: start, Message: "integer out of range"}
	}
	return n, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
