package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/jdeeny/rocto/internal/ast"
	"github.com/jdeeny/rocto/internal/parser"
	"github.com/jdeeny/rocto/token"
)

// DiagnosticBuilder provides a fluent interface for assembling a CompilerError
type DiagnosticBuilder struct {
	err CompilerError
}

func NewDiagnostic(code, message string, pos ast.Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	if length > 0 {
		b.err.Length = length
	}
	return b
}

func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *DiagnosticBuilder) WithReplacement(message, replacement string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message, Replacement: replacement})
	return b
}

func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

// forms shows the accepted shape of each committed production.
var forms = map[string]string{
	"alias directive":  ":alias NAME vX",
	"const directive":  ":const NAME VALUE",
	"label":            ": NAME",
	"sprite statement": "sprite X Y N",
	"if statement":     "if COND then",
}

// FromParseError converts an error returned by the parser into a diagnostic.
// Errors that carry no source position, such as a failed read, map to ErrorIO.
func FromParseError(err error) CompilerError {
	var syntaxErr *parser.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return SyntaxError(syntaxErr)
	}

	var valueErr *parser.ValueError
	if stderrors.As(err, &valueErr) {
		return NumeralOutOfRange(valueErr)
	}

	return NewDiagnostic(ErrorIO, err.Error(), ast.Position{}).Build()
}

// SyntaxError describes where parsing stopped and what would have been accepted.
func SyntaxError(e *parser.SyntaxError) CompilerError {
	found := "end of line"
	switch {
	case e.Remaining != "":
		found = fmt.Sprintf("'%s'", e.Remaining)
	case e.EOF:
		found = "end of input"
	}

	message := fmt.Sprintf("expected %s in %s, found %s", strings.Join(e.Expected, " or "), e.Context, found)
	word := leadingWord(e.Remaining)
	builder := NewDiagnostic(ErrorSyntax, message, e.Pos).WithLength(len(word))

	if form, ok := forms[e.Context]; ok {
		builder = builder.WithHelp(fmt.Sprintf("an Octo %s takes the form '%s'", e.Context, form))
	}

	if word != "" {
		candidates := token.Keywords()
		if strings.HasPrefix(e.Remaining, ":") {
			candidates = []string{"alias", "const"}
		}
		similar := findSimilarNames(strings.ToLower(word), candidates)
		switch len(similar) {
		case 0:
		case 1:
			builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", spelling(similar[0])))
		default:
			for i := range similar {
				similar[i] = spelling(similar[i])
			}
			builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
		}
	}

	if strings.HasPrefix(e.Remaining, "\\") {
		builder = builder.WithNote("line continuations are not supported; put the next fragment on its own line")
	}

	return builder.Build()
}

// NumeralOutOfRange reports a literal that cannot be represented.
func NumeralOutOfRange(e *parser.ValueError) CompilerError {
	return NewDiagnostic(ErrorNumeralRange, fmt.Sprintf("numeral '%s' is out of range", e.Literal), e.Pos).
		WithLength(len(e.Literal)).
		WithHelp(fmt.Sprintf("numerals must lie between %d and %d (0x%X)", parser.MinValue, parser.MaxValue, parser.MaxValue)).
		Build()
}

// spelling renders a candidate the way it is written in source.
func spelling(word string) string {
	if word == "alias" || word == "const" {
		return ":" + word
	}
	return word
}

func leadingWord(s string) string {
	s = strings.TrimPrefix(s, ":")
	end := 0
	for end < len(s) && token.IsIdentChar(s[end]) {
		end++
	}
	return s[:end]
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	if target == "" {
		return similar
	}

	for _, candidate := range candidates {
		if candidate != target && levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
