package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/protolens/protolens/internal/syntax"
	"github.com/protolens/protolens/internal/wellknown"
	"github.com/protolens/protolens/internal/workspace"
)

func (s *Server) TextDocumentHover(
	glspCtx *glsp.Context,
	params *protocol.HoverParams,
) (*protocol.Hover, error) {
	uri := params.TextDocument.URI
	tree, ok := s.store.Tree(uri)
	if !ok {
		return nil, nil
	}
	content := s.store.Text(uri)

	// Hovering an import path shows where it resolves to.
	if path, ok := tree.ImportPathAt(content, params.Position); ok {
		includePaths, _ := s.configs.IncludePathsFor(uri)
		resolved, found := workspace.ResolveImport(path, includePaths)
		if !found {
			return nil, nil
		}
		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindPlainText,
				Value: "Resolved import path:\n" + resolved,
			},
		}, nil
	}

	node := tree.ActionableNodeAt(content, params.Position)
	if node == nil {
		return nil, nil
	}
	identifier := node.Content(content)

	doc, found := wellknown.Lookup(identifier)
	if !found {
		doc, found = s.store.Hover(s.store.PackageOf(tree), identifier)
	}
	if !found {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: doc,
		},
		Range: ptr(syntax.RangeForNode(content, node)),
	}, nil
}

func (s *Server) TextDocumentDefinition(
	glspCtx *glsp.Context,
	params *protocol.DefinitionParams,
) (any, error) {
	uri := params.TextDocument.URI
	tree, ok := s.store.Tree(uri)
	if !ok {
		return nil, nil
	}
	content := s.store.Text(uri)

	if path, ok := tree.ImportPathAt(content, params.Position); ok {
		includePaths, _ := s.configs.IncludePathsFor(uri)
		resolved, found := workspace.ResolveImport(path, includePaths)
		if !found {
			return nil, nil
		}
		return protocol.Location{URI: workspace.URIForPath(resolved)}, nil
	}

	node := tree.ActionableNodeAt(content, params.Position)
	if node == nil {
		return nil, nil
	}
	identifier := node.Content(content)
	if wellknown.IsWellKnown(identifier) {
		return nil, nil
	}

	locations := s.store.Definition(s.store.PackageOf(tree), identifier)
	switch len(locations) {
	case 0:
		return nil, nil
	case 1:
		return locations[0], nil
	default:
		return locations, nil
	}
}

func (s *Server) TextDocumentCompletion(
	glspCtx *glsp.Context,
	params *protocol.CompletionParams,
) (any, error) {
	tree, ok := s.store.Tree(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	items := s.store.CompletionItems(s.store.PackageOf(tree))
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}

func (s *Server) TextDocumentReferences(
	glspCtx *glsp.Context,
	params *protocol.ReferenceParams,
) ([]protocol.Location, error) {
	uri := params.TextDocument.URI
	tree, ok := s.store.Tree(uri)
	if !ok {
		return nil, nil
	}
	content := s.store.Text(uri)

	s.loadWorkspaceForQuery(uri)

	ranges, qualified, ok := tree.ReferenceTree(content, params.Position)
	if !ok {
		return nil, nil
	}
	// The declaration's own span is always first in the local ranges.
	if !params.Context.IncludeDeclaration && len(ranges) > 0 {
		ranges = ranges[1:]
	}

	var locations []protocol.Location
	for _, r := range ranges {
		locations = append(locations, protocol.Location{URI: uri, Range: r})
	}
	return append(locations, s.store.References(s.store.PackageOf(tree), qualified)...), nil
}
