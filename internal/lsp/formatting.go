package lsp

import (
	"context"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/protolens/protolens/internal/config"
	"github.com/protolens/protolens/internal/format"
	"github.com/protolens/protolens/internal/workspace"
)

func (s *Server) TextDocumentFormatting(
	glspCtx *glsp.Context,
	params *protocol.DocumentFormattingParams,
) ([]protocol.TextEdit, error) {
	return s.format(params.TextDocument.URI, nil)
}

func (s *Server) TextDocumentRangeFormatting(
	glspCtx *glsp.Context,
	params *protocol.DocumentRangeFormattingParams,
) ([]protocol.TextEdit, error) {
	r := params.Range
	return s.format(params.TextDocument.URI, &r)
}

// format shells out to the workspace's clang-format. The working directory is
// the workspace root so a .clang-format there applies.
func (s *Server) format(uri protocol.DocumentUri, r *protocol.Range) ([]protocol.TextEdit, error) {
	content := s.store.Text(uri)
	if len(content) == 0 {
		return nil, nil
	}

	cfg, ok := s.configs.ConfigFor(uri)
	if !ok {
		cfg = config.Default()
	}
	workdir, _ := s.configs.WorkspaceFor(uri)
	path := workspace.PathForURI(uri)

	clang := format.NewClang(cfg.Path.ClangFormat, workdir, s.logger)
	if r != nil {
		return clang.FormatRange(context.Background(), *r, path, content)
	}
	return clang.FormatDocument(context.Background(), path, content)
}
