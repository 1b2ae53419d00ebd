package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jdeeny/rocto/grammar"
	"github.com/jdeeny/rocto/internal/parser"
)

var log = commonlog.GetLogger("rocto.lsp")

// SemanticTokenTypes is the legend advertised to clients; token type indexes
// refer to this slice.
var SemanticTokenTypes = []string{
	"comment",
	"keyword",
	"macro",
	"variable",
	"function",
	"enumMember",
	"number",
	"operator",
}

// SemanticTokenModifiers is the modifier legend; bit n is the nth entry.
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
	"defaultLibrary",
}

// document is the server's view of one open file.
type document struct {
	text    string
	program *parser.Program  // last successful parse, nil until one succeeds
	outline *grammar.Outline // always built, even for broken text
	err     error            // error from the latest parse
}

// OctoHandler implements the LSP server handlers for Octo sources
type OctoHandler struct {
	mu   sync.RWMutex
	docs map[string]*document
}

func NewOctoHandler() *OctoHandler {
	return &OctoHandler{
		docs: make(map[string]*document),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *OctoHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Infof("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			DocumentSymbolProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *OctoHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("initialized")
	return nil
}

func (h *OctoHandler) Shutdown(ctx *glsp.Context) error {
	log.Infof("shutdown")
	return nil
}

func (h *OctoHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	log.Debugf("trace set to %s", params.Value)
	return nil
}

// TextDocumentDidOpen stores the opened text and publishes its diagnostics
func (h *OctoHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("opened %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	doc := h.update(path, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, Diagnostics(doc.err))
	return nil
}

func (h *OctoHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("closed %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	h.mu.Lock()
	delete(h.docs, path)
	h.mu.Unlock()

	return nil
}

// TextDocumentDidChange applies full-text changes. Ranged edits are spliced
// into the stored text so clients that ignore the sync kind still work.
func (h *OctoHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	h.mu.RLock()
	text := ""
	if doc, ok := h.docs[path]; ok {
		text = doc.text
	}
	h.mu.RUnlock()

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text = c.Text
				continue
			}
			start, end := c.Range.IndexesIn(text)
			text = text[:start] + c.Text + text[end:]
		}
	}

	doc := h.update(path, text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, Diagnostics(doc.err))
	return nil
}

// update parses text and replaces the stored document. The last successful
// program is kept when the new text does not parse.
func (h *OctoHandler) update(path, text string) *document {
	doc := &document{text: text}

	program, err := parser.Parse(path, text)
	doc.err = err
	if err == nil {
		doc.program = program
	} else {
		log.Debugf("parse %s: %s", path, err)
	}

	outline, err := grammar.ParseOutline(path, text)
	if err != nil {
		log.Warningf("outline %s: %s", path, err)
	}
	doc.outline = outline

	h.mu.Lock()
	defer h.mu.Unlock()
	if prev, ok := h.docs[path]; ok && doc.program == nil {
		doc.program = prev.program
	}
	h.docs[path] = doc

	return doc
}

// lookup returns the stored document for uri, loading it from disk when the
// client never opened it.
func (h *OctoHandler) lookup(ctx *glsp.Context, uri protocol.DocumentUri) (*document, error) {
	path, err := uriToPath(uri)
	if err != nil {
		return nil, err
	}

	h.mu.RLock()
	doc, ok := h.docs[path]
	h.mu.RUnlock()
	if ok {
		return doc, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	doc = h.update(path, string(content))
	sendDiagnosticNotification(ctx, uri, Diagnostics(doc.err))
	return doc, nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove the leading slash of /C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrString(s string) *string {
	return &s
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
