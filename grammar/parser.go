package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

var outlineParser = participle.MustBuild[Outline](
	participle.Lexer(OctoLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseOutline builds the outline of source. Every token the lexer produces
// has a place in the grammar, so an error here means the lexer itself failed.
func ParseOutline(filename, source string) (*Outline, error) {
	return outlineParser.ParseString(filename, source)
}

func ParseOutlineFile(path string) (*Outline, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseOutline(path, string(source))
}
