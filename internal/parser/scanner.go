package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jdeeny/rocto/token"
)

// Octo immediates are at most a 16-bit address; anything outside this range
// cannot be represented by the target.
const (
	MinValue = -0x8000
	MaxValue = 0xFFFF
)

// errNoMatch is returned by a production that did not recognize its input.
// The caller restores the cursor and tries the next alternative. Any other
// error is fatal and aborts the parse.
var errNoMatch = errors.New("no match")

func isNoMatch(err error) bool {
	return errors.Is(err, errNoMatch)
}

// attempt runs rule and rewinds the cursor when it does not match.
func attempt[T any](p *Parser, rule func() (T, error)) (T, error) {
	start := p.current
	v, err := rule()
	if err != nil && isNoMatch(err) {
		p.current = start
	}
	return v, err
}

// alt tries each rule in order from the same position and returns the first
// match or the first fatal error.
func alt[T any](p *Parser, rules ...func() (T, error)) (T, error) {
	for _, rule := range rules {
		v, err := attempt(p, rule)
		if err == nil || !isNoMatch(err) {
			return v, err
		}
	}
	var zero T
	return zero, errNoMatch
}

func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.source)
}

func (p *Parser) peek() byte {
	if p.isAtEnd() {
		return 0
	}
	return p.source[p.current]
}

// whitespace matches one or more of space, tab and carriage return.
func (p *Parser) whitespace() error {
	start := p.current
	for !p.isAtEnd() {
		c := p.peek()
		if c != ' ' && c != '\t' && c != '\r' {
			break
		}
		p.current++
	}
	if p.current == start {
		return errNoMatch
	}
	return nil
}

// newline matches a single line feed.
func (p *Parser) newline() error {
	if p.peek() != '\n' {
		return errNoMatch
	}
	p.current++
	return nil
}

func (p *Parser) whitespaceOrNewline() error {
	if err := p.whitespace(); err == nil {
		return nil
	}
	return p.newline()
}

// trivia skips any run of whitespace and newlines. It never fails.
func (p *Parser) trivia() {
	for p.whitespaceOrNewline() == nil {
	}
}

// separator matches one or more whitespace-or-newline runs.
func (p *Parser) separator() error {
	if err := p.whitespaceOrNewline(); err != nil {
		return err
	}
	p.trivia()
	return nil
}

// literal matches s exactly.
func (p *Parser) literal(s string) error {
	if !strings.HasPrefix(p.source[p.current:], s) {
		return errNoMatch
	}
	p.current += len(s)
	return nil
}

// literalFold matches s ignoring ASCII case.
func (p *Parser) literalFold(s string) error {
	rest := p.source[p.current:]
	if len(rest) < len(s) || !strings.EqualFold(rest[:len(s)], s) {
		return errNoMatch
	}
	p.current += len(s)
	return nil
}

// keyword matches s ignoring case, but only as a whole word: "loop" does not
// match the start of "loopy".
func (p *Parser) keyword(s string) error {
	start := p.current
	if err := p.literalFold(s); err != nil {
		return err
	}
	if token.IsWordChar(p.peek()) {
		p.current = start
		return errNoMatch
	}
	return nil
}

// identifier matches one or more of A-Z, a-z, '_' and '-'.
func (p *Parser) identifier() (string, error) {
	start := p.current
	for !p.isAtEnd() && token.IsIdentChar(p.peek()) {
		p.current++
	}
	if p.current == start {
		return "", errNoMatch
	}
	return p.source[start:p.current], nil
}

func (p *Parser) digits(accept func(byte) bool) string {
	start := p.current
	for !p.isAtEnd() && accept(p.peek()) {
		p.current++
	}
	return p.source[start:p.current]
}

// numeral recognizes, in order, 0x hex, 0b binary, negative decimal and
// decimal. The prefixed forms come first since "0" alone is valid decimal.
func (p *Parser) numeral() (int, error) {
	return alt(p, p.hexValue, p.binValue, p.negValue, p.decValue)
}

func (p *Parser) hexValue() (int, error) {
	start := p.current
	if err := p.literalFold("0x"); err != nil {
		return 0, err
	}
	digits := p.digits(token.IsHexDigit)
	if digits == "" {
		return 0, errNoMatch
	}
	return p.convert(start, digits, 16, false)
}

func (p *Parser) binValue() (int, error) {
	start := p.current
	if err := p.literalFold("0b"); err != nil {
		return 0, err
	}
	digits := p.digits(token.IsBinDigit)
	if digits == "" {
		return 0, errNoMatch
	}
	return p.convert(start, digits, 2, false)
}

func (p *Parser) negValue() (int, error) {
	start := p.current
	if err := p.literal("-"); err != nil {
		return 0, err
	}
	digits := p.digits(token.IsDigit)
	if digits == "" {
		return 0, errNoMatch
	}
	return p.convert(start, digits, 10, true)
}

func (p *Parser) decValue() (int, error) {
	start := p.current
	digits := p.digits(token.IsDigit)
	if digits == "" {
		return 0, errNoMatch
	}
	return p.convert(start, digits, 10, false)
}

func (p *Parser) convert(start int, digits string, base int, negate bool) (int, error) {
	v, err := strconv.ParseInt(digits, base, 64)
	if negate {
		v = -v
	}
	if err != nil || v < MinValue || v > MaxValue {
		return 0, p.valueError(start, p.source[start:p.current])
	}
	return int(v), nil
}
