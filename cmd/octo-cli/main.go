// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/jdeeny/rocto/grammar"
	"github.com/jdeeny/rocto/internal/ast"
	"github.com/jdeeny/rocto/internal/errors"
	"github.com/jdeeny/rocto/internal/parser"
	"github.com/jdeeny/rocto/internal/symbols"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("octo", flag.ContinueOnError)
	showSymbols := fs.Bool("symbols", false, "print the alias, constant and label tables")
	quiet := fs.Bool("quiet", false, "do not print the fragment listing")
	showOutline := fs.Bool("outline", false, "print the declaration outline, even when parsing fails")
	noColor := fs.Bool("no-color", false, "disable colored output")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: octo [-symbols] [-outline] [-quiet] [-no-color] <file.8o>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	if *noColor {
		color.NoColor = true
	}

	startTime := time.Now()
	path := fs.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		return 1
	}

	program, err := parser.Parse(path, string(source))
	formattedDuration := formatDuration(time.Since(startTime))

	if *showOutline {
		printOutline(path, string(source))
	}

	if err != nil {
		errorReporter := errors.NewErrorReporter(path, string(source))
		fmt.Print(errorReporter.FormatError(errors.FromParseError(err)))
		color.Red("Parsing failed after %s", formattedDuration)
		return 1
	}

	if !*quiet {
		fmt.Print(ast.Listing(program.Fragments))
	}
	if *showSymbols {
		printSymbols(program.Symbols)
	}

	color.Green("Successfully parsed %s (%d fragments) in %s", path, len(program.Fragments), formattedDuration)
	return 0
}

func printSymbols(reg *symbols.Registry) {
	bold := color.New(color.Bold).SprintFunc()

	aliases := reg.Aliases()
	constants := reg.Constants()

	fmt.Println(bold("symbols:"))
	for _, s := range reg.Symbols(symbols.KindAlias) {
		fmt.Printf("  alias    %-16s v%x  (line %d)\n", s.Name, aliases[s.Name], s.Position.Line)
	}
	for _, s := range reg.Symbols(symbols.KindConstant) {
		fmt.Printf("  constant %-16s %d  (line %d)\n", s.Name, constants[s.Name], s.Position.Line)
	}
	for _, s := range reg.Symbols(symbols.KindLabel) {
		fmt.Printf("  label    %-16s (line %d)\n", s.Name, s.Position.Line)
	}
}

func printOutline(path, source string) {
	outline, err := grammar.ParseOutline(path, source)
	if err != nil {
		color.Yellow("outline unavailable: %v", err)
		return
	}

	fmt.Println(color.New(color.Bold).Sprint("outline:"))
	fmt.Print(outline.String())
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
