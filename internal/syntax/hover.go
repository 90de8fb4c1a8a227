package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Hover returns the comment text documenting the user-defined type named by
// identifier, resolving dotted identifiers as nested-type paths the same way
// Definitions does. The first documented match wins.
func (t *Tree) Hover(content []byte, identifier string) (string, bool) {
	return t.hoverIn(content, t.root(), identifier)
}

func (t *Tree) hoverIn(content []byte, scope *sitter.Node, identifier string) (string, bool) {
	head, rest, nested := strings.Cut(identifier, ".")
	if !nested {
		for _, n := range t.FindAllFrom(scope, func(n *sitter.Node) bool {
			return IsUserDefined(n) && n.Content(content) == identifier
		}) {
			if doc, ok := t.PrecedingComments(content, n); ok {
				return doc, true
			}
		}
		return "", false
	}

	for _, name := range t.FindAllFrom(scope, func(n *sitter.Node) bool {
		return IsMessageName(n) && n.Content(content) == head
	}) {
		body := name.Parent()
		if body == nil {
			continue
		}
		if doc, ok := t.hoverIn(content, body, rest); ok {
			return doc, true
		}
	}
	return "", false
}
