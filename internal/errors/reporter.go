package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/jdeeny/rocto/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError is a positioned diagnostic with optional suggestions
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0100
	Message     string       // Primary error message
	Position    ast.Position // Location in source
	Length      int          // Length of the problematic region
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
}

// Suggestion is a suggested fix
type Suggestion struct {
	Message     string // Description of the suggestion
	Replacement string // Suggested replacement text (optional)
}

func (e CompilerError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s[%s]: %s",
		e.Position.Filename, e.Position.Line, e.Position.Column, e.Level, e.Code, e.Message)
}

// ErrorReporter renders diagnostics against the source they refer to
type ErrorReporter struct {
	filename string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders err with a location header, the offending line framed by
// its neighbours and a caret marker under the reported column.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := levelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n", levelColor(string(err.Level)), err.Message))
	}

	filename := err.Position.Filename
	if filename == "" {
		filename = er.filename
	}

	width := lineNumberWidth(err.Position.Line + 1)
	indent := strings.Repeat(" ", width)
	gutter := dim("│")

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n", indent, dim("-->"), filename, err.Position.Line, err.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, gutter))

	line := err.Position.Line
	if line > 1 && line-1 <= len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n", dim(fmt.Sprintf("%*d", width, line-1)), gutter, er.lines[line-2]))
	}

	if line > 0 && line <= len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n", bold(fmt.Sprintf("%*d", width, line)), gutter, er.lines[line-1]))
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, gutter, marker(err.Position.Column, err.Length, err.Level)))
	}

	if line > 0 && line < len(er.lines) && er.lines[line] != "" {
		result.WriteString(fmt.Sprintf("%s %s %s\n", dim(fmt.Sprintf("%*d", width, line+1)), gutter, er.lines[line]))
	}

	if len(err.Suggestions) > 0 {
		suggestionColor := color.New(color.FgCyan).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s\n", indent, gutter))
		for i, s := range err.Suggestions {
			if i == 0 {
				result.WriteString(fmt.Sprintf("%s %s: %s\n", indent, suggestionColor("help"), s.Message))
			} else {
				result.WriteString(fmt.Sprintf("%s       %s\n", indent, s.Message))
			}
			if s.Replacement != "" {
				result.WriteString(fmt.Sprintf("%s %s %s\n", indent, suggestionColor("│"), suggestionColor(s.Replacement)))
			}
		}
	}

	noteColor := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, gutter, noteColor("note:"), note))
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, gutter, helpColor("help:"), err.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

func levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func marker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))

	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if level == Warning {
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	}
	return spaces + markerColor(strings.Repeat("^", length))
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}
