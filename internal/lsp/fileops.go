package lsp

import (
	"os"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/protolens/protolens/internal/workspace"
)

func (s *Server) WorkspaceDidCreateFiles(
	glspCtx *glsp.Context,
	params *protocol.CreateFilesParams,
) error {
	for _, file := range params.Files {
		uri := protocol.DocumentUri(file.URI)
		content, err := os.ReadFile(workspace.PathForURI(uri))
		if err != nil {
			continue
		}
		s.syncDocument(glspCtx.Notify, uri, content)
	}
	return nil
}

func (s *Server) WorkspaceDidRenameFiles(
	glspCtx *glsp.Context,
	params *protocol.RenameFilesParams,
) error {
	for _, file := range params.Files {
		s.store.RenameFile(protocol.DocumentUri(file.OldURI), protocol.DocumentUri(file.NewURI))
	}
	return nil
}

func (s *Server) WorkspaceDidDeleteFiles(
	glspCtx *glsp.Context,
	params *protocol.DeleteFilesParams,
) error {
	for _, file := range params.Files {
		uri := protocol.DocumentUri(file.URI)
		s.store.Delete(uri)
		// Clear diagnostics still displayed for the deleted file.
		glspCtx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}
