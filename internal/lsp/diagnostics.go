package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	rerrors "github.com/jdeeny/rocto/internal/errors"
)

// Diagnostics converts the error from a parse into LSP diagnostics. A nil
// error yields an empty, non-nil slice so that publishing it clears stale
// markers in the editor.
func Diagnostics(err error) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if err == nil {
		return diagnostics
	}

	ce := rerrors.FromParseError(err)

	line := max(ce.Position.Line-1, 0)
	start := max(ce.Position.Column-1, 0)
	length := max(ce.Length, 1)

	message := ce.Message
	if ce.HelpText != "" {
		message += "\n" + ce.HelpText
	}
	for _, s := range ce.Suggestions {
		message += "\n" + s.Message
	}

	severity := protocol.DiagnosticSeverityError
	if ce.Level == rerrors.Warning {
		severity = protocol.DiagnosticSeverityWarning
	}

	return append(diagnostics, protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: uint32(start)},
			End:   protocol.Position{Line: uint32(line), Character: uint32(start + length)},
		},
		Severity: &severity,
		Code:     &protocol.IntegerOrString{Value: ce.Code},
		Source:   ptrString("octo-parser"),
		Message:  message,
	})
}
