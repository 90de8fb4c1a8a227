package syntax

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// DiagnosticSource tags every diagnostic this server produces itself, as
// opposed to ones relayed from external tools.
const DiagnosticSource = "protolens"

// ParseDiagnostics returns one error diagnostic per ERROR node in the tree.
// Tree-sitter recovers and keeps parsing past errors, so a single file can
// carry several.
func (t *Tree) ParseDiagnostics(content []byte) []protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := DiagnosticSource

	var out []protocol.Diagnostic
	for _, n := range t.FindAll(IsError) {
		out = append(out, protocol.Diagnostic{
			Range:    RangeForNode(content, n),
			Severity: &severity,
			Source:   &source,
			Message:  "Syntax error",
		})
	}
	return out
}
