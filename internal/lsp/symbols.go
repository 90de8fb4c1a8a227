package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) TextDocumentDocumentSymbol(
	glspCtx *glsp.Context,
	params *protocol.DocumentSymbolParams,
) (any, error) {
	uri := params.TextDocument.URI
	tree, ok := s.store.Tree(uri)
	if !ok {
		return []protocol.DocumentSymbol{}, nil
	}
	return tree.DocumentSymbols(s.store.Text(uri)), nil
}

func (s *Server) WorkspaceSymbol(
	glspCtx *glsp.Context,
	params *protocol.WorkspaceSymbolParams,
) ([]protocol.SymbolInformation, error) {
	return s.store.WorkspaceSymbols(params.Query), nil
}
