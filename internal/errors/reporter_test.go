package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdeeny/rocto/internal/ast"
	"github.com/jdeeny/rocto/internal/parser"
)

func plain(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func parseErr(t *testing.T, source string) error {
	t.Helper()
	_, err := parser.Parse("test.8o", source)
	require.Error(t, err)
	return err
}

func TestErrorReporter(t *testing.T) {
	plain(t)
	source := ": main\n\tv0 := 1\n\tsprite v0 v1\n\tloop\n"

	err := FromParseError(parseErr(t, source))
	formatted := NewErrorReporter("test.8o", source).FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorSyntax+"]")
	assert.Contains(t, formatted, "expected numeral in sprite statement, found end of line")
	assert.Contains(t, formatted, "--> test.8o:3:14")
	assert.Contains(t, formatted, "  2 │ \tv0 := 1")
	assert.Contains(t, formatted, "  3 │ \tsprite v0 v1")
	assert.Contains(t, formatted, "  4 │ \tloop")
	assert.Contains(t, formatted, "help: an Octo sprite statement takes the form 'sprite X Y N'")
}

func TestSyntaxErrorDiagnostic(t *testing.T) {
	err := FromParseError(parseErr(t, ":alias px\n"))

	assert.Equal(t, Error, err.Level)
	assert.Equal(t, ErrorSyntax, err.Code)
	assert.Equal(t, 1, err.Position.Line)
	assert.Equal(t, 10, err.Position.Column)
	assert.Equal(t, "test.8o", err.Position.Filename)
	assert.Equal(t, "expected register in alias directive, found end of line", err.Message)
	assert.Equal(t, 1, err.Length)
	assert.Contains(t, err.HelpText, ":alias NAME vX")
}

func TestSyntaxErrorSuggestions(t *testing.T) {
	tests := []struct {
		source     string
		suggestion string
	}{
		{":alais px v3", "did you mean ':alias'?"},
		{":cnst SPEED 4", "did you mean ':const'?"},
		{"if v0 == 1 thn", "did you mean 'then'?"},
	}

	for _, tt := range tests {
		err := FromParseError(parseErr(t, tt.source))
		require.Len(t, err.Suggestions, 1, tt.source)
		assert.Equal(t, tt.suggestion, err.Suggestions[0].Message, tt.source)
	}

	err := FromParseError(parseErr(t, "@@@"))
	assert.Empty(t, err.Suggestions)
	assert.Empty(t, err.HelpText)
}

func TestSyntaxErrorSpan(t *testing.T) {
	err := FromParseError(parseErr(t, "if v0 == 1 thn"))
	assert.Equal(t, 12, err.Position.Column)
	assert.Equal(t, 3, err.Length, "the marker spans the offending word")
}

func TestContinuationNote(t *testing.T) {
	err := FromParseError(parseErr(t, "0x70 0x70 \\\n0x20"))
	require.Len(t, err.Notes, 1)
	assert.Contains(t, err.Notes[0], "line continuations are not supported")
}

func TestNumeralOutOfRange(t *testing.T) {
	plain(t)
	source := "v1 := 0x10000\n"

	err := FromParseError(parseErr(t, source))
	assert.Equal(t, ErrorNumeralRange, err.Code)
	assert.Contains(t, err.Message, "'0x10000'")
	assert.Equal(t, 7, err.Length)
	assert.Contains(t, err.HelpText, "-32768 and 65535")

	formatted := NewErrorReporter("test.8o", source).FormatError(err)
	assert.Contains(t, formatted, "      ^^^^^^^", "marker under the literal")
}

func TestIOErrorHasNoPosition(t *testing.T) {
	_, readErr := parser.ParseFile("testdata/missing.8o")
	require.Error(t, readErr)

	err := FromParseError(readErr)
	assert.Equal(t, ErrorIO, err.Code)
	assert.Contains(t, err.Message, "failed to read file")
	assert.Equal(t, ast.Position{}, err.Position)

	wrapped := FromParseError(fmt.Errorf("building: %w", parseErr(t, "@")))
	assert.Equal(t, ErrorSyntax, wrapped.Code, "wrapped parser errors are unwrapped")
}

func TestCompilerErrorString(t *testing.T) {
	err := FromParseError(parseErr(t, "v0 := 1\n@"))
	assert.Equal(t,
		"test.8o:2:1: error[E0100]: expected comment or alias or const or label or assignment or statement or literal or call in fragment, found '@'",
		err.Error())
}

func TestWarningFormatting(t *testing.T) {
	plain(t)
	reporter := NewErrorReporter("test.8o", "loop")

	warning := NewDiagnostic("E0800", "loop is never closed", ast.Position{Line: 1, Column: 1}).
		WithLength(4).
		WithReplacement("close it", "loop again").
		Build()
	warning.Level = Warning
	formatted := reporter.FormatError(warning)

	assert.Contains(t, formatted, "warning[E0800]")
	assert.Contains(t, formatted, "--> test.8o:1:1")
	assert.Contains(t, formatted, "help: close it")
	assert.Contains(t, formatted, "loop again")
	assert.True(t, IsWarning(warning.Code))
}

func TestErrorMarkerCreation(t *testing.T) {
	plain(t)

	m := marker(5, 8, Error)
	assert.Equal(t, 4, strings.Count(m, " "))
	assert.Equal(t, 8, strings.Count(m, "^"))

	m = marker(1, 0, Error)
	assert.Equal(t, "^", m)
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, "Parser", GetErrorCategory(ErrorSyntax))
	assert.Equal(t, "Parser", GetErrorCategory(ErrorNumeralRange))
	assert.Equal(t, "Tooling", GetErrorCategory(ErrorIO))
	assert.False(t, IsWarning(ErrorSyntax))
	assert.NotEqual(t, "Unknown error code", GetErrorDescription(ErrorNumeralRange))
	assert.Equal(t, "Unknown error code", GetErrorDescription("E0999"))
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("sprite", "sprite"))
	assert.Equal(t, 1, levenshteinDistance("sprite", "sprit"))
	assert.Equal(t, 1, levenshteinDistance("loop", "lop"))
	assert.Equal(t, 5, levenshteinDistance("again", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestSimilarNameFinding(t *testing.T) {
	candidates := []string{"sprite", "loop", "again", "return", "if"}

	assert.Equal(t, []string{"return"}, findSimilarNames("retrun", candidates))
	assert.Empty(t, findSimilarNames("sprite", candidates), "exact matches are not suggestions")
	assert.Empty(t, findSimilarNames("verydifferent", candidates))
	assert.Empty(t, findSimilarNames("", candidates))
}
