package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Tree is one file's parsed concrete syntax tree together with the identity
// of the file it came from. A Tree is immutable once produced: edits replace
// the whole Tree, they never mutate it. Queries take the source bytes the
// tree was parsed from; handing a Tree foreign or stale text corrupts every
// span it reports.
type Tree struct {
	uri  protocol.DocumentUri
	tree *sitter.Tree
}

func (t *Tree) URI() protocol.DocumentUri { return t.uri }

// SetURI re-keys the tree to a new file identity after a file rename. The
// parsed tree itself is retained.
func (t *Tree) SetURI(uri protocol.DocumentUri) { t.uri = uri }

func (t *Tree) root() *sitter.Node { return t.tree.RootNode() }

// NodeAt returns the smallest named node covering pos, or nil.
func (t *Tree) NodeAt(content []byte, pos protocol.Position) *sitter.Node {
	p := PointForPosition(content, pos)
	return t.root().NamedDescendantForPointRange(p, p)
}

// ActionableNodeAt returns the node at pos when it is actionable, or its
// immediate parent when that parent is actionable, or nil.
func (t *Tree) ActionableNodeAt(content []byte, pos protocol.Position) *sitter.Node {
	n := t.NodeAt(content, pos)
	if n == nil {
		return nil
	}
	if IsActionable(n) {
		return n
	}
	if parent := n.Parent(); IsActionable(parent) {
		return parent
	}
	return nil
}

// TextAt returns the text of the node at pos.
func (t *Tree) TextAt(content []byte, pos protocol.Position) (string, bool) {
	n := t.NodeAt(content, pos)
	if n == nil {
		return "", false
	}
	return n.Content(content), true
}

// FindAll collects every node satisfying pred, depth-first pre-order.
func (t *Tree) FindAll(pred func(*sitter.Node) bool) []*sitter.Node {
	return collect(t.root(), pred, nil, false)
}

// FindAllFrom is FindAll rooted at an arbitrary subtree.
func (t *Tree) FindAllFrom(n *sitter.Node, pred func(*sitter.Node) bool) []*sitter.Node {
	return collect(n, pred, nil, false)
}

// FindFirst returns the first node satisfying pred in depth-first pre-order,
// or nil.
func (t *Tree) FindFirst(pred func(*sitter.Node) bool) *sitter.Node {
	found := collect(t.root(), pred, nil, true)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

func collect(n *sitter.Node, pred func(*sitter.Node) bool, acc []*sitter.Node, firstOnly bool) []*sitter.Node {
	if n == nil {
		return acc
	}
	if pred(n) {
		acc = append(acc, n)
		if firstOnly {
			return acc
		}
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		acc = collect(n.Child(i), pred, acc, firstOnly)
		if firstOnly && len(acc) > 0 {
			return acc
		}
	}
	return acc
}

// Package returns the file's declared package name, or "" when the file has
// no package clause.
func (t *Tree) Package(content []byte) string {
	pkg := t.FindFirst(func(n *sitter.Node) bool { return IsKind(n, KindPackage) })
	if pkg == nil {
		return ""
	}
	for i := 0; i < int(pkg.NamedChildCount()); i++ {
		if child := pkg.NamedChild(i); IsKind(child, KindFullIdent) {
			return child.Content(content)
		}
	}
	return ""
}

// ImportPaths returns every import path string in the file, quotes stripped.
func (t *Tree) ImportPaths(content []byte) []string {
	var paths []string
	for _, n := range t.FindAll(IsImport) {
		if s := importString(n); s != nil {
			paths = append(paths, strings.Trim(s.Content(content), `"`))
		}
	}
	return paths
}

// ImportPathNode returns the string node of the import declaring path, for
// diagnostics anchored at the import's span.
func (t *Tree) ImportPathNode(content []byte, path string) *sitter.Node {
	for _, n := range t.FindAll(IsImport) {
		s := importString(n)
		if s != nil && strings.Trim(s.Content(content), `"`) == path {
			return s
		}
	}
	return nil
}

// ImportPathAt returns the import path declared at pos when pos sits on an
// import statement's path string.
func (t *Tree) ImportPathAt(content []byte, pos protocol.Position) (string, bool) {
	n := t.NodeAt(content, pos)
	if n == nil || !IsKind(n, KindString) || !IsImport(n.Parent()) {
		return "", false
	}
	return strings.Trim(n.Content(content), `"`), true
}

func importString(imp *sitter.Node) *sitter.Node {
	for i := 0; i < int(imp.NamedChildCount()); i++ {
		if child := imp.NamedChild(i); IsKind(child, KindString) {
			return child
		}
	}
	return nil
}

// AncestorNamesAt returns the actionable node at pos followed by the name
// node of each enclosing message, innermost first. This is the chain a
// symbol's full nested-type path is assembled from.
func (t *Tree) AncestorNamesAt(content []byte, pos protocol.Position) []*sitter.Node {
	start := t.ActionableNodeAt(content, pos)
	if start == nil {
		return nil
	}

	chain := []*sitter.Node{start}
	for p := start.Parent(); p != nil; p = p.Parent() {
		if !IsMessage(p) {
			continue
		}
		name := messageName(p)
		// The starting node's own container carries the starting node as its
		// name; only enclosing scopes extend the chain.
		if name != nil && name.StartByte() != chain[len(chain)-1].StartByte() {
			chain = append(chain, name)
		}
	}
	return chain
}

func messageName(msg *sitter.Node) *sitter.Node {
	for i := 0; i < int(msg.NamedChildCount()); i++ {
		if child := msg.NamedChild(i); IsMessageName(child) {
			return child
		}
	}
	return nil
}
