package parser

import (
	"fmt"
	"os"
	"sort"

	"github.com/jdeeny/rocto/internal/ast"
	"github.com/jdeeny/rocto/internal/symbols"
)

// Program is the result of a successful parse.
type Program struct {
	Fragments []ast.Fragment
	Symbols   *symbols.Registry
}

// Parser holds the state of one parse: the source, a cursor into it and the
// symbol registry. Line numbers are derived from the cursor through a table of
// newline offsets built once up front, so backtracking never disturbs them.
type Parser struct {
	filename string
	source   string
	current  int
	newlines []int
	registry *symbols.Registry
}

func New(filename, source string) *Parser {
	var newlines []int
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			newlines = append(newlines, i)
		}
	}

	return &Parser{
		filename: filename,
		source:   source,
		newlines: newlines,
		registry: symbols.NewRegistry(),
	}
}

func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Parse(path, string(source))
}

func Parse(filename, source string) (*Program, error) {
	return New(filename, source).ParseProgram()
}

func ParseString(source string) (*Program, error) {
	return Parse("", source)
}

// fragmentAlternatives names the top-level productions in the order they are
// attempted.
var fragmentAlternatives = []string{
	"comment", "alias", "const", "label", "assignment", "statement", "literal", "call",
}

// ParseProgram consumes the whole input. Each step skips trivia, parses one
// fragment and records any symbol it defines. A fragment is added to the
// registry only after it has parsed completely.
func (p *Parser) ParseProgram() (*Program, error) {
	var fragments []ast.Fragment

	for {
		p.trivia()
		if p.isAtEnd() {
			break
		}

		start := p.current
		fragment, err := p.parseFragment()
		if err != nil {
			if isNoMatch(err) {
				return nil, p.syntaxError(start, "fragment", fragmentAlternatives...)
			}
			return nil, err
		}

		p.registry.Define(fragment)
		fragments = append(fragments, fragment)
	}

	return &Program{Fragments: fragments, Symbols: p.registry}, nil
}

func (p *Parser) parseFragment() (ast.Fragment, error) {
	return alt(p,
		p.parseComment,
		p.parseAlias,
		p.parseConst,
		p.parseLabel,
		p.parseAssignment,
		p.parseStatement,
		p.parseLiteral,
		p.parseCall,
	)
}

// Line returns the number of newlines before the cursor.
func (p *Parser) Line() int {
	return sort.SearchInts(p.newlines, p.current)
}

// Registry returns the symbols defined so far.
func (p *Parser) Registry() *symbols.Registry {
	return p.registry
}

func (p *Parser) position(offset int) ast.Position {
	line := sort.SearchInts(p.newlines, offset)
	lineStart := 0
	if line > 0 {
		lineStart = p.newlines[line-1] + 1
	}

	return ast.Position{
		Filename: p.filename,
		Offset:   offset,
		Line:     line + 1,
		Column:   offset - lineStart + 1,
	}
}
