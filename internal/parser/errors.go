package parser

import (
	"fmt"
	"strings"

	"github.com/jdeeny/rocto/internal/ast"
)

// excerptLimit bounds the unconsumed input carried by a SyntaxError.
const excerptLimit = 32

// SyntaxError reports input that no production accepts, or a directive or
// statement that was recognized by its keyword but is malformed.
type SyntaxError struct {
	Pos       ast.Position
	Context   string   // production being parsed, e.g. "fragment", "alias directive"
	Expected  []string // alternatives that were attempted at Pos
	Remaining string   // excerpt of the input at Pos, at most one line
	EOF       bool     // Pos is the end of the input
}

func (e *SyntaxError) Error() string {
	var found string
	switch {
	case e.Remaining != "":
		found = fmt.Sprintf("%q", e.Remaining)
	case e.EOF:
		found = "end of input"
	default:
		found = "end of line"
	}
	return fmt.Sprintf("%s:%d:%d: syntax error in %s: expected %s, found %s",
		e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Context, strings.Join(e.Expected, " or "), found)
}

func (e *SyntaxError) Position() ast.Position { return e.Pos }

// ValueError reports a numeral outside [MinValue, MaxValue].
type ValueError struct {
	Pos     ast.Position
	Context string
	Literal string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s is outside the range %d..%d",
		e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Context, e.Literal, MinValue, MaxValue)
}

func (e *ValueError) Position() ast.Position { return e.Pos }

func (p *Parser) syntaxError(offset int, context string, expected ...string) *SyntaxError {
	return &SyntaxError{
		Pos:       p.position(offset),
		Context:   context,
		Expected:  expected,
		Remaining: p.excerpt(offset),
		EOF:       offset >= len(p.source),
	}
}

func (p *Parser) valueError(offset int, literal string) *ValueError {
	return &ValueError{
		Pos:     p.position(offset),
		Context: "numeral out of range",
		Literal: literal,
	}
}

// excerpt returns the rest of the line at offset, cut to excerptLimit bytes.
func (p *Parser) excerpt(offset int) string {
	rest := p.source[offset:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	if len(rest) > excerptLimit {
		rest = rest[:excerptLimit]
	}
	return rest
}

// commit turns a non-match inside an already recognized production into a
// SyntaxError at the current position. Fatal errors pass through unchanged.
func (p *Parser) commit(err error, context string, expected ...string) error {
	if err == nil || !isNoMatch(err) {
		return err
	}
	return p.syntaxError(p.current, context, expected...)
}
