package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// CanRename returns the user-defined name node at pos, or false when the
// position does not sit on a message or enum declaration name. Only
// declaration names are rename targets; a rename initiated on a field type
// reference is rejected rather than guessed at.
func (t *Tree) CanRename(content []byte, pos protocol.Position) (*sitter.Node, bool) {
	n := t.ActionableNodeAt(content, pos)
	if !IsUserDefined(n) {
		return nil, false
	}
	return n, true
}

// RenameTree renames the declaration at pos within its own lexical scopes and
// reports the declaration's package-relative qualified name before and after.
//
// The declaration's name gains more qualification the further a reference
// sits from it: inside the enclosing message it is bare, one scope out it is
// prefixed with the enclosing message's name, and so on. The walk therefore
// climbs the enclosing messages innermost first, rewriting the references
// each scope can see under the spelling valid there, and extends the
// qualified spelling one segment per scope. References outside every
// enclosing scope use the fully qualified spelling and are the caller's job,
// via RenameFields with the returned names.
func (t *Tree) RenameTree(content []byte, pos protocol.Position, newName string) (edits []protocol.TextEdit, oldQualified, newQualified string, ok bool) {
	target, ok := t.CanRename(content, pos)
	if !ok {
		return nil, "", "", false
	}

	oldQualified = target.Content(content)
	newQualified = newName
	edits = append(edits, protocol.TextEdit{
		Range:   RangeForNode(content, target),
		NewText: newName,
	})

	for _, scope := range t.AncestorNamesAt(content, pos)[1:] {
		container := scope.Parent()
		if container == nil {
			continue
		}
		for _, ref := range t.fieldRefsEqual(content, container, oldQualified) {
			edits = append(edits, protocol.TextEdit{
				Range:   RangeForNode(content, ref),
				NewText: newQualified,
			})
		}
		oldQualified = scope.Content(content) + "." + oldQualified
		newQualified = scope.Content(content) + "." + newQualified
	}
	return edits, oldQualified, newQualified, true
}

// RenameFields rewrites every field type reference spelled as old, or as a
// dotted path starting with old, into the new spelling. Matching is bounded
// at dot segments so that renaming Book never touches BookShelf.
func (t *Tree) RenameFields(content []byte, old, new string) []protocol.TextEdit {
	var edits []protocol.TextEdit
	for _, ref := range t.fieldRefsQualifiedBy(content, old) {
		text := ref.Content(content)
		edits = append(edits, protocol.TextEdit{
			Range:   RangeForNode(content, ref),
			NewText: new + text[len(old):],
		})
	}
	return edits
}

// ReferenceTree collects, within this file's lexical scopes, the ranges of
// the declaration at pos and of every reference to it, and reports the
// declaration's package-relative qualified name for the caller's wider
// search. Same scope walk as RenameTree.
func (t *Tree) ReferenceTree(content []byte, pos protocol.Position) (ranges []protocol.Range, qualified string, ok bool) {
	target, ok := t.CanRename(content, pos)
	if !ok {
		return nil, "", false
	}

	qualified = target.Content(content)
	ranges = append(ranges, RangeForNode(content, target))

	for _, scope := range t.AncestorNamesAt(content, pos)[1:] {
		container := scope.Parent()
		if container == nil {
			continue
		}
		for _, ref := range t.fieldRefsEqual(content, container, qualified) {
			ranges = append(ranges, RangeForNode(content, ref))
		}
		qualified = scope.Content(content) + "." + qualified
	}
	return ranges, qualified, true
}

// ReferenceFields returns the ranges of every field type reference spelled as
// qualified or as a dotted path starting with it, dot-bounded like
// RenameFields.
func (t *Tree) ReferenceFields(content []byte, qualified string) []protocol.Range {
	var ranges []protocol.Range
	for _, ref := range t.fieldRefsQualifiedBy(content, qualified) {
		ranges = append(ranges, RangeForNode(content, ref))
	}
	return ranges
}

func (t *Tree) fieldRefsEqual(content []byte, scope *sitter.Node, text string) []*sitter.Node {
	return t.FindAllFrom(scope, func(n *sitter.Node) bool {
		return IsFieldType(n) && n.Content(content) == text
	})
}

func (t *Tree) fieldRefsQualifiedBy(content []byte, prefix string) []*sitter.Node {
	return t.FindAll(func(n *sitter.Node) bool {
		if !IsFieldType(n) {
			return false
		}
		text := n.Content(content)
		return text == prefix || strings.HasPrefix(text, prefix+".")
	})
}
