package lsp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jdeeny/rocto/internal/symbols"
	"github.com/jdeeny/rocto/token"
)

const (
	kindLabel = "label"
	kindAlias = "alias"
	kindConst = "const"
)

// symbolInfo is a definition as shown to the editor. Line and Column are
// 1-based.
type symbolInfo struct {
	name   string
	kind   string
	detail string
	line   int
	column int
}

// collectSymbols returns the definitions in doc ordered by position. A
// document that parses is described by its registry; otherwise the outline
// stands in so symbols survive while the user is typing.
func collectSymbols(doc *document) []symbolInfo {
	var out []symbolInfo

	switch {
	case doc.err == nil && doc.program != nil:
		reg := doc.program.Symbols
		aliases := reg.Aliases()
		constants := reg.Constants()

		for _, s := range reg.Symbols(symbols.KindLabel) {
			out = append(out, symbolInfo{name: s.Name, kind: kindLabel, detail: "label", line: s.Position.Line, column: s.Position.Column})
		}
		for _, s := range reg.Symbols(symbols.KindAlias) {
			out = append(out, symbolInfo{name: s.Name, kind: kindAlias, detail: fmt.Sprintf("v%X", aliases[s.Name]), line: s.Position.Line, column: s.Position.Column})
		}
		for _, s := range reg.Symbols(symbols.KindConstant) {
			out = append(out, symbolInfo{name: s.Name, kind: kindConst, detail: fmt.Sprintf("%d", constants[s.Name]), line: s.Position.Line, column: s.Position.Column})
		}

	case doc.outline != nil:
		for _, d := range doc.outline.Declarations() {
			detail := d.Detail
			if d.Kind == kindLabel {
				detail = "label"
			}
			out = append(out, symbolInfo{name: d.Name, kind: d.Kind, detail: detail, line: d.Pos.Line, column: d.Pos.Column})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].line != out[j].line {
			return out[i].line < out[j].line
		}
		return out[i].column < out[j].column
	})

	return out
}

func symbolKinds(doc *document) map[string]string {
	kinds := make(map[string]string)
	for _, s := range collectSymbols(doc) {
		kinds[s.name] = s.kind
	}
	return kinds
}

// TextDocumentCompletion offers keywords, directives, registers and every
// symbol defined in the document.
func (h *OctoHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc, err := h.lookup(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completionItems(doc),
	}, nil
}

func completionItems(doc *document) []protocol.CompletionItem {
	var items []protocol.CompletionItem

	add := func(label string, kind protocol.CompletionItemKind, detail string) {
		items = append(items, protocol.CompletionItem{
			Label:  label,
			Kind:   &kind,
			Detail: ptrString(detail),
		})
	}

	for _, kw := range token.Keywords() {
		add(kw, protocol.CompletionItemKindKeyword, "keyword")
	}
	add(token.NOT_KEY, protocol.CompletionItemKindKeyword, "keyword")
	add(token.ALIAS, protocol.CompletionItemKindKeyword, "directive")
	add(token.CONST, protocol.CompletionItemKindKeyword, "directive")

	for r := 0; r < 16; r++ {
		add(fmt.Sprintf("v%x", r), protocol.CompletionItemKindVariable, "register")
	}
	add("i", protocol.CompletionItemKindVariable, "index register")

	syms := collectSymbols(doc)
	sort.SliceStable(syms, func(i, j int) bool {
		return strings.ToLower(syms[i].name) < strings.ToLower(syms[j].name)
	})
	for _, s := range syms {
		switch s.kind {
		case kindLabel:
			add(s.name, protocol.CompletionItemKindFunction, s.detail)
		case kindAlias:
			add(s.name, protocol.CompletionItemKindVariable, "alias for "+s.detail)
		case kindConst:
			add(s.name, protocol.CompletionItemKindConstant, "= "+s.detail)
		}
	}

	return items
}

// TextDocumentDocumentSymbol lists labels, aliases and constants for the
// editor outline view.
func (h *OctoHandler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc, err := h.lookup(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	result := []protocol.DocumentSymbol{}
	for _, s := range collectSymbols(doc) {
		kind := protocol.SymbolKindFunction
		switch s.kind {
		case kindAlias:
			kind = protocol.SymbolKindVariable
		case kindConst:
			kind = protocol.SymbolKindConstant
		}

		rng := protocol.Range{
			Start: protocol.Position{Line: uint32(s.line - 1), Character: uint32(s.column - 1)},
			End:   protocol.Position{Line: uint32(s.line - 1), Character: uint32(s.column - 1 + len(s.name))},
		}
		result = append(result, protocol.DocumentSymbol{
			Name:           s.name,
			Detail:         ptrString(s.detail),
			Kind:           kind,
			Range:          rng,
			SelectionRange: rng,
		})
	}

	return result, nil
}
