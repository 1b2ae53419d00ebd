// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/jdeeny/rocto/internal/lsp"
)

const lsName = "octo" // Name identifier for the language server

var (
	version = "0.1.0"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = stderr)
	commonlog.Configure(1, nil)
	log := commonlog.GetLogger("rocto")

	octoHandler := lsp.NewOctoHandler()

	handler = protocol.Handler{
		Initialize:                     octoHandler.Initialize,
		Initialized:                    octoHandler.Initialized,
		Shutdown:                       octoHandler.Shutdown,
		SetTrace:                       octoHandler.SetTrace,
		TextDocumentDidOpen:            octoHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           octoHandler.TextDocumentDidClose,
		TextDocumentDidChange:          octoHandler.TextDocumentDidChange,
		TextDocumentCompletion:         octoHandler.TextDocumentCompletion,
		TextDocumentDocumentSymbol:     octoHandler.TextDocumentDocumentSymbol,
		TextDocumentSemanticTokensFull: octoHandler.TextDocumentSemanticTokensFull,
	}

	// - handler: the protocol handler struct
	// - name: the language server name (shown to clients)
	// - debug: whether to enable internal GLSP debug logs
	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting Octo language server %s", version)

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
