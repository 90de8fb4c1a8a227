package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/protolens/protolens/internal/syntax"
)

func (s *Server) TextDocumentPrepareRename(
	glspCtx *glsp.Context,
	params *protocol.PrepareRenameParams,
) (any, error) {
	uri := params.TextDocument.URI
	tree, ok := s.store.Tree(uri)
	if !ok {
		return nil, nil
	}
	content := s.store.Text(uri)

	node, ok := tree.CanRename(content, params.Position)
	if !ok {
		// A nil result tells the client the position is not renameable.
		return nil, nil
	}
	return syntax.RangeForNode(content, node), nil
}

func (s *Server) TextDocumentRename(
	glspCtx *glsp.Context,
	params *protocol.RenameParams,
) (*protocol.WorkspaceEdit, error) {
	uri := params.TextDocument.URI
	tree, ok := s.store.Tree(uri)
	if !ok {
		return nil, nil
	}
	content := s.store.Text(uri)

	s.loadWorkspaceForQuery(uri)

	localEdits, oldQualified, newQualified, ok := tree.RenameTree(content, params.Position, params.NewName)
	if !ok {
		return nil, nil
	}

	changes := s.store.Rename(s.store.PackageOf(tree), oldQualified, newQualified)
	changes[uri] = append(changes[uri], localEdits...)

	return &protocol.WorkspaceEdit{Changes: changes}, nil
}
