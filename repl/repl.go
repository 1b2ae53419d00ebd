// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/jdeeny/rocto/internal/ast"
	rerrors "github.com/jdeeny/rocto/internal/errors"
	"github.com/jdeeny/rocto/internal/parser"
	"github.com/jdeeny/rocto/internal/symbols"
)

const PROMPT = "8o> "

const historyFile = ".rocto_history"

// ErrQuit is returned by Eval when the user asks to leave.
var ErrQuit = stderrors.New("quit")

// Session keeps the symbols defined by earlier lines so later lines can be
// inspected against them.
type Session struct {
	out     io.Writer
	symbols *symbols.Registry
}

func NewSession(out io.Writer) *Session {
	return &Session{out: out, symbols: symbols.NewRegistry()}
}

// Symbols returns everything defined during the session.
func (s *Session) Symbols() *symbols.Registry {
	return s.symbols
}

// Eval parses one line and prints its fragments. A parse error is reported to
// the session output and returned; the session's symbols are left untouched.
func (s *Session) Eval(input string) error {
	switch strings.TrimSpace(input) {
	case "":
		return nil
	case ".quit", ".exit":
		return ErrQuit
	case ".symbols":
		s.printSymbols()
		return nil
	case ".help":
		fmt.Fprintln(s.out, "Enter Octo source to see how it parses.")
		fmt.Fprintln(s.out, "  .symbols  list aliases, constants and labels defined so far")
		fmt.Fprintln(s.out, "  .quit     leave the REPL")
		return nil
	}

	program, err := parser.Parse("<repl>", input)
	if err != nil {
		reporter := rerrors.NewErrorReporter("<repl>", input)
		fmt.Fprint(s.out, reporter.FormatError(rerrors.FromParseError(err)))
		return err
	}

	s.symbols.Merge(program.Symbols)
	fmt.Fprint(s.out, ast.Listing(program.Fragments))
	return nil
}

func (s *Session) printSymbols() {
	if s.symbols.Len() == 0 {
		fmt.Fprintln(s.out, "no symbols defined")
		return
	}

	aliases := s.symbols.Aliases()
	for _, sym := range s.symbols.Symbols(symbols.KindAlias) {
		fmt.Fprintf(s.out, "alias    %s v%x\n", sym.Name, aliases[sym.Name])
	}
	constants := s.symbols.Constants()
	for _, sym := range s.symbols.Symbols(symbols.KindConstant) {
		fmt.Fprintf(s.out, "constant %s %d\n", sym.Name, constants[sym.Name])
	}
	for _, sym := range s.symbols.Symbols(symbols.KindLabel) {
		fmt.Fprintf(s.out, "label    %s\n", sym.Name)
	}
}

// Start runs an interactive session on the terminal until EOF or .quit.
func Start() {
	historyPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyPath = filepath.Join(home, historyFile)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = line.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = line.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	session := NewSession(os.Stdout)
	for {
		input, err := line.Prompt(PROMPT)
		if stderrors.Is(err, io.EOF) || stderrors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			color.Red("error reading input: %v", err)
			return
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		if err := session.Eval(input); stderrors.Is(err, ErrQuit) {
			return
		}
	}
}
