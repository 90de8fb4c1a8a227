package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/protolens/protolens/internal/syntax"
)

func (s *Server) TextDocumentDidOpen(
	glspCtx *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	s.setOpen(uri)
	s.syncDocument(glspCtx.Notify, uri, []byte(params.TextDocument.Text))
	return nil
}

func (s *Server) TextDocumentDidChange(
	glspCtx *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	content := applyContentChanges(s.store.Text(uri), params.ContentChanges)
	s.syncDocument(glspCtx.Notify, uri, content)
	return nil
}

func (s *Server) TextDocumentDidSave(
	glspCtx *glsp.Context,
	params *protocol.DidSaveTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	content := s.store.Text(uri)
	if params.Text != nil {
		content = []byte(*params.Text)
	}
	s.syncDocument(glspCtx.Notify, uri, content)
	return nil
}

func (s *Server) TextDocumentDidClose(
	glspCtx *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	s.setClosed(params.TextDocument.URI)
	return nil
}

// applyContentChanges folds the client's edits into the last known text.
// Whole-document events replace it; ranged events splice at byte offsets. An
// event whose range cannot be located falls back to treating its text as the
// whole document.
func applyContentChanges(content []byte, changes []any) []byte {
	for _, rawChange := range changes {
		switch change := rawChange.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			content = []byte(change.Text)
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				content = []byte(change.Text)
				continue
			}
			start, okStart := syntax.OffsetForPosition(content, change.Range.Start)
			end, okEnd := syntax.OffsetForPosition(content, change.Range.End)
			if !okStart || !okEnd || start > end {
				content = []byte(change.Text)
				continue
			}
			spliced := make([]byte, 0, len(content)-(end-start)+len(change.Text))
			spliced = append(spliced, content[:start]...)
			spliced = append(spliced, change.Text...)
			content = append(spliced, content[end:]...)
		}
	}
	return content
}
