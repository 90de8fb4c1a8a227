package workspace

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/protolens/protolens/internal/syntax"
)

// Diagnostics assembles the published diagnostics for uri: parse errors
// (unless suppressed), one entry per unresolved import declared by this file,
// and whatever an external tool contributed. unresolvedImports may contain
// paths surfaced by other files in the same traversal; only those matching
// one of this file's own import statements produce an entry here.
func (s *Store) Diagnostics(uri protocol.DocumentUri, unresolvedImports []string, external []protocol.Diagnostic, includeParse bool) []protocol.Diagnostic {
	tree, ok := s.Tree(uri)
	if !ok {
		return external
	}
	content := s.Text(uri)

	var diags []protocol.Diagnostic
	if includeParse {
		diags = tree.ParseDiagnostics(content)
	}

	severity := protocol.DiagnosticSeverityError
	source := syntax.DiagnosticSource
	for _, path := range unresolvedImports {
		node := tree.ImportPathNode(content, path)
		if node == nil {
			continue
		}
		diags = append(diags, protocol.Diagnostic{
			Range:    syntax.RangeForNode(content, node),
			Severity: &severity,
			Source:   &source,
			Message:  "failed to find proto file",
		})
	}

	return append(diags, external...)
}
