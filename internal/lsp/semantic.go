package lsp

import (
	"unicode/utf8"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jdeeny/rocto/grammar"
)

// SemanticToken is one entry before delta encoding. Line and StartChar are
// 0-based; TokenType indexes SemanticTokenTypes and TokenModifiers is a
// bitmask over SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// TextDocumentSemanticTokensFull highlights the whole document from the token
// stream, so it keeps working while the text does not parse.
func (h *OctoHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Debugf("semantic tokens for %s", params.TextDocument.URI)

	doc, err := h.lookup(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens, err := collectSemanticTokens(doc)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{Data: encode(tokens)}, nil
}

func collectSemanticTokens(doc *document) ([]SemanticToken, error) {
	lexed, err := grammar.Tokenize("", doc.text)
	if err != nil {
		return nil, err
	}

	names := symbolKinds(doc)

	var tokens []SemanticToken
	for _, t := range lexed {
		var tokenType string
		modifiers := 0

		switch t.Kind {
		case grammar.Comment:
			tokenType = "comment"
		case grammar.Directive:
			tokenType = "macro"
		case grammar.Keyword:
			tokenType = "keyword"
		case grammar.Number:
			tokenType = "number"
		case grammar.Operator, grammar.Punctuation:
			tokenType = "operator"
		case grammar.Register, grammar.Index:
			tokenType = "variable"
			modifiers |= modifier("defaultLibrary")
		case grammar.Identifier:
			switch names[t.Text] {
			case kindAlias:
				tokenType = "variable"
			case kindConst:
				tokenType = "enumMember"
				modifiers |= modifier("readonly")
			default:
				tokenType = "function"
			}
		default:
			continue
		}

		if t.Declaration {
			modifiers |= modifier("declaration")
		}

		tokens = append(tokens, SemanticToken{
			Line:           uint32(t.Pos.Line - 1),
			StartChar:      uint32(t.Pos.Column - 1),
			Length:         uint32(utf8.RuneCountInString(t.Text)),
			TokenType:      indexOf(tokenType, SemanticTokenTypes),
			TokenModifiers: modifiers,
		})
	}

	return tokens, nil
}

// encode packs tokens into the LSP wire format using delta-line and
// delta-start compression.
func encode(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

func modifier(name string) int {
	return 1 << indexOf(name, SemanticTokenModifiers)
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
