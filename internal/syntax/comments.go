package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// PrecedingComments returns the contiguous run of comment siblings
// immediately before n's parent, markers stripped, restored to source order
// and joined with newlines. Returns false when no comment precedes the
// declaration.
//
// The walk starts at the parent because name nodes live inside their
// container: the doc comment for `message Book` precedes the message node,
// not the message_name node.
func (t *Tree) PrecedingComments(content []byte, n *sitter.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	parent := n.Parent()
	if parent == nil {
		return "", false
	}

	var lines []string
	for sib := parent.PrevSibling(); sib != nil && IsComment(sib); sib = sib.PrevSibling() {
		text := strings.TrimSpace(sib.Content(content))
		text = strings.TrimPrefix(text, "//")
		lines = append(lines, strings.TrimSpace(text))
	}
	if len(lines) == 0 {
		return "", false
	}

	// Collected walking backward; restore source order.
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return strings.Join(lines, "\n"), true
}
