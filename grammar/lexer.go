package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/jdeeny/rocto/token"
)

// OctoLexer splits Octo source into editor tokens. It is deliberately
// forgiving: every byte of input lands in some token, so highlighting works
// on documents that do not parse.
var OctoLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Comment", Pattern: `#[^\n]*`, Action: nil},

		// Operators (":=" must win over the colon forms below)
		{Name: "Operator", Pattern: `>>=|<<=|:=|\+=|-=|\|=|&=|\^=|==|!=`, Action: nil},

		// ":alias", ":const" and any other colon-prefixed word
		{Name: "Directive", Pattern: `:[a-zA-Z_\-][a-zA-Z0-9_\-]*`, Action: nil},
		{Name: "Colon", Pattern: `:`, Action: nil},
		{Name: "Semicolon", Pattern: `;`, Action: nil},

		{Name: "Number", Pattern: `-?(0[xX][0-9a-fA-F]+|0[bB][01]+|[0-9]+)`, Action: nil},
		{Name: "Ident", Pattern: `[a-zA-Z_\-][a-zA-Z0-9_\-]*`, Action: nil},

		{Name: "Whitespace", Pattern: `[ \t\r]+`, Action: nil},
		{Name: "Newline", Pattern: `\n`, Action: nil},
		{Name: "Bad", Pattern: `.`, Action: nil},
	},
})

var symbols = OctoLexer.Symbols()

// Kind classifies a token for highlighting.
type Kind int

const (
	Invalid Kind = iota
	Comment
	Directive
	Keyword
	Register
	Index
	Identifier
	Number
	Operator
	Punctuation
)

func (k Kind) String() string {
	switch k {
	case Comment:
		return "comment"
	case Directive:
		return "directive"
	case Keyword:
		return "keyword"
	case Register:
		return "register"
	case Index:
		return "index"
	case Identifier:
		return "identifier"
	case Number:
		return "number"
	case Operator:
		return "operator"
	case Punctuation:
		return "punctuation"
	default:
		return "invalid"
	}
}

// Token is a classified lexeme. Declaration marks a name introduced by a
// label or a directive.
type Token struct {
	Kind        Kind
	Text        string
	Pos         lexer.Position
	Declaration bool
}

// Tokenize lexes source and classifies every token except whitespace and
// newlines.
func Tokenize(filename, source string) ([]Token, error) {
	lex, err := OctoLexer.LexString(filename, source)
	if err != nil {
		return nil, err
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	var tokens []Token
	declares := false
	for _, t := range raw {
		switch t.Type {
		case lexer.EOF, symbols["Whitespace"]:
			continue
		case symbols["Newline"]:
			declares = false
			continue
		}

		tok := Token{Kind: classify(t), Text: t.Value, Pos: t.Pos}
		if tok.Kind == Identifier && declares {
			tok.Declaration = true
		}
		declares = tok.Kind == Directive || (tok.Kind == Punctuation && tok.Text == token.COLON)
		tokens = append(tokens, tok)
	}

	return tokens, nil
}

func classify(t lexer.Token) Kind {
	switch t.Type {
	case symbols["Comment"]:
		return Comment
	case symbols["Operator"]:
		return Operator
	case symbols["Directive"]:
		switch strings.ToLower(t.Value) {
		case token.ALIAS, token.CONST:
			return Directive
		}
		return Invalid
	case symbols["Colon"]:
		return Punctuation
	case symbols["Semicolon"]:
		return Keyword
	case symbols["Number"]:
		return Number
	case symbols["Ident"]:
		switch token.LookupIdent(t.Value) {
		case token.REGISTER:
			return Register
		case token.INDEX:
			return Index
		case token.IDENT:
			return Identifier
		default:
			return Keyword
		}
	}
	return Invalid
}
