package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// DocumentSymbols returns the file's message and enum declarations as a
// hierarchy. Each symbol's Range covers the whole declaration, its
// SelectionRange just the name, and nested declarations become children.
// A declaration's preceding comment run becomes its detail text.
func (t *Tree) DocumentSymbols(content []byte) []protocol.DocumentSymbol {
	return t.symbolsIn(content, t.root())
}

func (t *Tree) symbolsIn(content []byte, scope *sitter.Node) []protocol.DocumentSymbol {
	var out []protocol.DocumentSymbol
	for i := 0; i < int(scope.NamedChildCount()); i++ {
		child := scope.NamedChild(i)
		if !IsMessage(child) && !IsKind(child, KindEnum) {
			// Declarations sit inside body nodes; descend through anything
			// that is not itself a declaration.
			out = append(out, t.symbolsIn(content, child)...)
			continue
		}

		name := declarationName(child)
		if name == nil {
			continue
		}

		sym := protocol.DocumentSymbol{
			Name:           name.Content(content),
			Kind:           SymbolKind(name),
			Range:          RangeForNode(content, child),
			SelectionRange: RangeForNode(content, name),
			Children:       t.symbolsIn(content, child),
		}
		if detail, ok := t.PrecedingComments(content, name); ok {
			sym.Detail = &detail
		}
		out = append(out, sym)
	}
	return out
}

func declarationName(container *sitter.Node) *sitter.Node {
	for i := 0; i < int(container.NamedChildCount()); i++ {
		if child := container.NamedChild(i); IsUserDefined(child) {
			return child
		}
	}
	return nil
}
