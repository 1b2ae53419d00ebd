package grammar_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdeeny/rocto/grammar"
)

func kinds(tokens []grammar.Token) []grammar.Kind {
	out := make([]grammar.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeClassifies(t *testing.T) {
	tokens, err := grammar.Tokenize("test.8o", "if v0 -key then vf := random 0xFF # x")
	require.NoError(t, err)

	assert.Equal(t, []grammar.Kind{
		grammar.Keyword,
		grammar.Register,
		grammar.Keyword,
		grammar.Keyword,
		grammar.Register,
		grammar.Operator,
		grammar.Keyword,
		grammar.Number,
		grammar.Comment,
	}, kinds(tokens))
	assert.Equal(t, "-key", tokens[2].Text)
	assert.Equal(t, "# x", tokens[8].Text)
}

func TestTokenizeOperands(t *testing.T) {
	tokens, err := grammar.Tokenize("test.8o", "i := hex v3 ; vault -= -1 v1 >>= v1 SPRITE")
	require.NoError(t, err)

	assert.Equal(t, []grammar.Kind{
		grammar.Index,
		grammar.Operator,
		grammar.Keyword,
		grammar.Register,
		grammar.Keyword,
		grammar.Identifier,
		grammar.Operator,
		grammar.Number,
		grammar.Register,
		grammar.Operator,
		grammar.Register,
		grammar.Keyword,
	}, kinds(tokens))
}

func TestTokenizeDeclarations(t *testing.T) {
	tokens, err := grammar.Tokenize("test.8o", ": main\n:alias px v3\n:const SPEED 4\nmain px")
	require.NoError(t, err)
	require.Len(t, tokens, 10)

	declared := map[string]bool{}
	for _, tok := range tokens {
		if tok.Declaration {
			declared[tok.Text] = true
		}
	}
	assert.Equal(t, map[string]bool{"main": true, "px": true, "SPEED": true}, declared)

	assert.Equal(t, grammar.Punctuation, tokens[0].Kind)
	assert.Equal(t, grammar.Directive, tokens[2].Kind)
	assert.False(t, tokens[4].Declaration, "the register operand is not a declaration")
	assert.False(t, tokens[8].Declaration, "a use of a label is not a declaration")
}

func TestTokenizeInvalid(t *testing.T) {
	tokens, err := grammar.Tokenize("test.8o", ":foo @ v0")
	require.NoError(t, err)

	assert.Equal(t, []grammar.Kind{grammar.Invalid, grammar.Invalid, grammar.Register}, kinds(tokens))
	assert.Equal(t, "invalid", tokens[0].Kind.String())
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := grammar.Tokenize("test.8o", "loop\n\tsprite px py 8\nagain")
	require.NoError(t, err)
	require.Len(t, tokens, 6)

	assert.Equal(t, 1, tokens[0].Pos.Line)
	assert.Equal(t, 1, tokens[0].Pos.Column)
	assert.Equal(t, 2, tokens[1].Pos.Line)
	assert.Equal(t, 2, tokens[1].Pos.Column)
	assert.Equal(t, 3, tokens[5].Pos.Line)
	assert.Equal(t, "test.8o", tokens[5].Pos.Filename)
}

func TestTokenizeEmpty(t *testing.T) {
	tokens, err := grammar.Tokenize("test.8o", "")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestOutlineDemo(t *testing.T) {
	source, err := os.ReadFile("../internal/parser/testdata/move.8o")
	require.NoError(t, err)

	outline, err := grammar.ParseOutline("move.8o", string(source))
	require.NoError(t, err)

	decls := outline.Declarations()
	require.Len(t, decls, 4)

	assert.Equal(t, grammar.Declaration{Kind: "alias", Name: "px", Detail: "v3", Pos: decls[0].Pos}, decls[0])
	assert.Equal(t, "py", decls[1].Name)
	assert.Equal(t, "label", decls[2].Kind)
	assert.Equal(t, "main", decls[2].Name)
	assert.Equal(t, 9, decls[2].Pos.Line)
	assert.Equal(t, "person", decls[3].Name)
	assert.Equal(t, 33, decls[3].Pos.Line)
}

func TestOutlineToleratesBrokenSource(t *testing.T) {
	source := ":alias px\n@@ junk := \n: loop-end\n:const MAX 0x10\n:\n:bogus name"

	outline, err := grammar.ParseOutline("broken.8o", source)
	require.NoError(t, err)

	decls := outline.Declarations()
	require.Len(t, decls, 3)

	assert.Equal(t, "alias", decls[0].Kind)
	assert.Equal(t, "px", decls[0].Name)
	assert.Empty(t, decls[0].Detail, "operands never cross a newline")

	assert.Equal(t, "label", decls[1].Kind)
	assert.Equal(t, "loop-end", decls[1].Name)
	assert.Equal(t, 3, decls[1].Pos.Line)

	assert.Equal(t, "const", decls[2].Kind)
	assert.Equal(t, "MAX", decls[2].Name)
	assert.Equal(t, "0x10", decls[2].Detail)
}

func TestOutlineString(t *testing.T) {
	outline, err := grammar.ParseOutline("test.8o", ":alias px v3\n: main\n\t:const MAX 0x10\n\tloop again\n: draw")
	require.NoError(t, err)

	assert.Equal(t, "alias px v3  (1:1)\n"+
		"label main  (2:1)\n"+
		"    const MAX 0x10  (3:2)\n"+
		"label draw  (5:1)\n", outline.String())
}

func TestParseOutlineFile(t *testing.T) {
	outline, err := grammar.ParseOutlineFile("../internal/parser/testdata/scroll.8o")
	require.NoError(t, err)
	assert.NotEmpty(t, outline.Declarations())

	_, err = grammar.ParseOutlineFile("testdata/missing.8o")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
