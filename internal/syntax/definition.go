package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Definitions returns the ranges of user-defined type names in this file
// matching identifier. A dotted identifier is resolved as a nested-type path:
// each leading segment selects an enclosing message scope, and the final
// segment must name a declaration inside it.
func (t *Tree) Definitions(content []byte, identifier string) []protocol.Range {
	var out []protocol.Range
	for _, n := range t.definitionNodes(content, t.root(), identifier) {
		out = append(out, RangeForNode(content, n))
	}
	return out
}

func (t *Tree) definitionNodes(content []byte, scope *sitter.Node, identifier string) []*sitter.Node {
	head, rest, nested := strings.Cut(identifier, ".")
	if !nested {
		return t.FindAllFrom(scope, func(n *sitter.Node) bool {
			return IsUserDefined(n) && n.Content(content) == identifier
		})
	}

	var out []*sitter.Node
	for _, name := range t.FindAllFrom(scope, func(n *sitter.Node) bool {
		return IsMessageName(n) && n.Content(content) == head
	}) {
		if body := name.Parent(); body != nil {
			out = append(out, t.definitionNodes(content, body, rest)...)
		}
	}
	return out
}
