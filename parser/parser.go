// Package parser reads the textual canonical-form syntax and turns it into
// interned canonical.Form values.
//
// The grammar, whitespace-insensitive between tokens:
//
//	form    := moves | atomic
//	moves   := '{' list '|' list '}'
//	list    := [ form { ',' form } ]
//	atomic  := [ number ] [ ups ] [ star ]       (at least one part)
//	number  := integer | integer '/' digits      (power-of-two denominator)
//	ups     := ('^' | 'v') [ digits ]            (also: digits '·' ('^'|'v'))
//	star    := '*' [ digits ]
//
// Moves lists are fed through the simplifier, so the input need not be
// canonical: Parse("{0,1|}") returns the integer 2. Printing is the
// inverse direction and lives on canonical.Form's String method; for any
// form f whose dyadic parts print with a decimal denominator,
// Parse(f.String()) returns f. The n/2^k spelling printed once a
// denominator no longer fits 64 bits is read back as a number followed by
// ups, not as that denominator.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/cgtlath/canonical"
	"github.com/katalvlaran/cgtlath/dyadic"
	"github.com/katalvlaran/cgtlath/nimber"
)

// ErrSyntax is returned (wrapped, with position context) whenever the input
// does not match the grammar.
var ErrSyntax = errors.New("parser: syntax error")

// Parse reads a whole canonical-form expression; trailing input other than
// whitespace is an error.
func Parse(s string) (canonical.Form, error) {
	sc := &scanner{input: s}
	f, err := sc.parseForm()
	if err != nil {
		return canonical.Form{}, err
	}
	sc.skipSpace()
	if !sc.done() {
		return canonical.Form{}, sc.errorf("trailing input")
	}
	return f, nil
}

type scanner struct {
	input string
	pos   int
}

func (sc *scanner) done() bool {
	return sc.pos >= len(sc.input)
}

func (sc *scanner) peek() byte {
	if sc.done() {
		return 0
	}
	return sc.input[sc.pos]
}

func (sc *scanner) skipSpace() {
	for !sc.done() {
		switch sc.input[sc.pos] {
		case ' ', '\t', '\n', '\r':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *scanner) errorf(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s at offset %d in %q", ErrSyntax, msg, sc.pos, sc.input)
}

func (sc *scanner) parseForm() (canonical.Form, error) {
	sc.skipSpace()
	if sc.peek() == '{' {
		return sc.parseMoves()
	}
	return sc.parseAtomic()
}

func (sc *scanner) parseMoves() (canonical.Form, error) {
	sc.pos++ // '{'
	left, err := sc.parseList()
	if err != nil {
		return canonical.Form{}, err
	}
	sc.skipSpace()
	if sc.peek() != '|' {
		return canonical.Form{}, sc.errorf("expected '|'")
	}
	sc.pos++
	right, err := sc.parseList()
	if err != nil {
		return canonical.Form{}, err
	}
	sc.skipSpace()
	if sc.peek() != '}' {
		return canonical.Form{}, sc.errorf("expected '}'")
	}
	sc.pos++
	return canonical.Simplify(left, right), nil
}

func (sc *scanner) parseList() ([]canonical.Form, error) {
	sc.skipSpace()
	if sc.peek() == '|' || sc.peek() == '}' {
		return nil, nil
	}
	var out []canonical.Form
	for {
		f, err := sc.parseForm()
		if err != nil {
			return nil, err
		}
		out = append(out, f)
		sc.skipSpace()
		if sc.peek() != ',' {
			return out, nil
		}
		sc.pos++
	}
}

// parseAtomic reads number, ups and star parts, any of which may be absent
// as long as at least one is present, and hands them to the NumberUpStar
// constructor, which collapses trivial combinations to the right compact
// variant.
func (sc *scanner) parseAtomic() (canonical.Form, error) {
	number := dyadic.NewInteger(0)
	var ups int32
	var star nimber.Nimber
	any := false

	sc.skipSpace()
	if sc.peek() == '-' || isDigit(sc.peek()) {
		n, err := sc.parseInt()
		if err != nil {
			return canonical.Form{}, err
		}
		switch {
		case sc.peek() == '/':
			sc.pos++
			den, err := sc.parseUint()
			if err != nil {
				return canonical.Form{}, err
			}
			number, err = dyadic.NewFraction(n, uint32(den))
			if err != nil {
				return canonical.Form{}, fmt.Errorf("%w: %v", ErrSyntax, err)
			}
		case sc.hasDotArrow():
			// The multiplier spelling k·^ / k·v (and k.^ for plain ASCII).
			// The integer just read is the ups count, not a number.
			sign, err := sc.parseDotArrow()
			if err != nil {
				return canonical.Form{}, err
			}
			if n < 1 {
				return canonical.Form{}, sc.errorf("ups multiplier must be positive, got %d", n)
			}
			ups = sign * int32(n)
		default:
			number = dyadic.NewInteger(n)
		}
		any = true
	}

	if ups == 0 && (sc.peek() == '^' || sc.peek() == 'v') {
		sign := int32(1)
		if sc.peek() == 'v' {
			sign = -1
		}
		sc.pos++
		ups = sign
		if isDigit(sc.peek()) {
			k, err := sc.parseUint()
			if err != nil {
				return canonical.Form{}, err
			}
			ups = sign * int32(k)
		}
		any = true
	}

	if sc.peek() == '*' {
		sc.pos++
		star = nimber.New(1)
		if isDigit(sc.peek()) {
			k, err := sc.parseUint()
			if err != nil {
				return canonical.Form{}, err
			}
			star = nimber.New(uint32(k))
		}
		any = true
	}

	if !any {
		return canonical.Form{}, sc.errorf("expected a game value")
	}
	return canonical.NumberUpStar(number, ups, star), nil
}

// hasDotArrow reports whether the scanner sits on '·' or '.' followed by an
// arrow, without consuming anything.
func (sc *scanner) hasDotArrow() bool {
	rest := sc.input[sc.pos:]
	for _, dot := range []string{"·", "."} {
		if tail, ok := strings.CutPrefix(rest, dot); ok {
			return len(tail) > 0 && (tail[0] == '^' || tail[0] == 'v')
		}
	}
	return false
}

func (sc *scanner) parseDotArrow() (int32, error) {
	rest := sc.input[sc.pos:]
	for _, dot := range []string{"·", "."} {
		if tail, ok := strings.CutPrefix(rest, dot); ok {
			sc.pos += len(dot)
			if len(tail) > 0 && tail[0] == '^' {
				sc.pos++
				return 1, nil
			}
			if len(tail) > 0 && tail[0] == 'v' {
				sc.pos++
				return -1, nil
			}
			break
		}
	}
	return 0, sc.errorf("expected '^' or 'v' after multiplier")
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (sc *scanner) parseInt() (int64, error) {
	neg := false
	if sc.peek() == '-' {
		neg = true
		sc.pos++
	}
	v, err := sc.parseUint()
	if err != nil {
		return 0, err
	}
	if neg {
		return -v, nil
	}
	return v, nil
}

func (sc *scanner) parseUint() (int64, error) {
	if !isDigit(sc.peek()) {
		return 0, sc.errorf("expected digits")
	}
	var v int64
	for isDigit(sc.peek()) {
		v = v*10 + int64(sc.input[sc.pos]-'0')
		sc.pos++
	}
	return v, nil
}
