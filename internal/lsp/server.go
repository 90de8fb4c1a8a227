// Package lsp wires the workspace services onto the wire protocol: one
// Server owns the document store, the per-root configs and the file watcher,
// and every protocol request is a thin method over them.
package lsp

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	"github.com/protolens/protolens/internal/config"
	"github.com/protolens/protolens/internal/protoc"
	"github.com/protolens/protolens/internal/watcher"
	"github.com/protolens/protolens/internal/workspace"
)

type Server struct {
	name, version string

	handler *protocol.Handler
	logger  commonlog.Logger

	store   *workspace.Store
	configs *config.WorkspaceConfigs

	// Documents the editor has open; the watcher must not clobber their text
	// with what happens to be on disk.
	openDocsMutex *sync.Mutex
	openDocs      map[protocol.DocumentUri]struct{}

	rootsMutex *sync.Mutex
	roots      []string

	watchMutex *sync.Mutex
	watch      *watcher.Watcher
	watchStop  context.CancelFunc
}

func NewServer(name, version string, cliIncludePaths []string, logger commonlog.Logger) *Server {
	s := &Server{
		name:          name,
		version:       version,
		logger:        logger,
		store:         workspace.NewStore(logger),
		configs:       config.NewWorkspaceConfigs(cliIncludePaths),
		openDocsMutex: &sync.Mutex{},
		openDocs:      make(map[protocol.DocumentUri]struct{}),
		rootsMutex:    &sync.Mutex{},
		watchMutex:    &sync.Mutex{},
	}
	s.handler = &protocol.Handler{
		Initialize:                  s.Initialize,
		Initialized:                 s.Initialized,
		Shutdown:                    s.Shutdown,
		Exit:                        s.Exit,
		SetTrace:                    s.SetTrace,
		TextDocumentDidOpen:         s.TextDocumentDidOpen,
		TextDocumentDidChange:       s.TextDocumentDidChange,
		TextDocumentDidSave:         s.TextDocumentDidSave,
		TextDocumentDidClose:        s.TextDocumentDidClose,
		TextDocumentHover:           s.TextDocumentHover,
		TextDocumentDefinition:      s.TextDocumentDefinition,
		TextDocumentCompletion:      s.TextDocumentCompletion,
		TextDocumentReferences:      s.TextDocumentReferences,
		TextDocumentPrepareRename:   s.TextDocumentPrepareRename,
		TextDocumentRename:          s.TextDocumentRename,
		TextDocumentDocumentSymbol:  s.TextDocumentDocumentSymbol,
		WorkspaceSymbol:             s.WorkspaceSymbol,
		TextDocumentFormatting:      s.TextDocumentFormatting,
		TextDocumentRangeFormatting: s.TextDocumentRangeFormatting,
		WorkspaceDidCreateFiles:     s.WorkspaceDidCreateFiles,
		WorkspaceDidRenameFiles:     s.WorkspaceDidRenameFiles,
		WorkspaceDidDeleteFiles:     s.WorkspaceDidDeleteFiles,
	}
	return s
}

// RunStdio serves the protocol over stdin/stdout until the client goes away.
func (s *Server) RunStdio() error {
	return glspserver.NewServer(s.handler, s.name, false).RunStdio()
}

// syncDocument re-parses uri from content, eagerly loads its imports, and
// publishes the resulting diagnostics.
func (s *Server) syncDocument(notify glsp.NotifyFunc, uri protocol.DocumentUri, content []byte) {
	includePaths, _ := s.configs.IncludePathsFor(uri)
	unresolved := s.store.Upsert(uri, content, includePaths, workspace.DefaultImportDepth)
	s.publishDiagnostics(notify, uri, unresolved)
}

func (s *Server) publishDiagnostics(notify glsp.NotifyFunc, uri protocol.DocumentUri, unresolved []string) {
	cfg, _ := s.configs.ConfigFor(uri)

	var external []protocol.Diagnostic
	if cfg.Experimental.UseProtocDiagnostics {
		includePaths, _ := s.configs.IncludePathsFor(uri)
		runner := protoc.NewRunner(cfg.Path.Protoc, s.logger)
		external = runner.Collect(context.Background(), workspace.PathForURI(uri), includePaths)
	}

	diags := s.store.Diagnostics(uri, unresolved, external, !cfg.DisableParseDiagnostics)
	if diags == nil {
		// Publishing an empty list clears stale diagnostics client-side.
		diags = []protocol.Diagnostic{}
	}
	notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}

// loadWorkspaceForQuery makes sure uri's workspace is fully indexed before a
// cross-file scan; the scan only sees files already in the store. Indexing is
// idempotent per root. The no-workspace root is never walked.
func (s *Server) loadWorkspaceForQuery(uri protocol.DocumentUri) {
	root, ok := s.configs.WorkspaceFor(uri)
	if !ok || root == string(filepath.Separator) {
		return
	}
	s.store.IndexWorkspaceTree(root, nil)
}

func (s *Server) startWatcher(notify glsp.NotifyFunc, roots []string) {
	if len(roots) == 0 {
		return
	}

	w, err := watcher.New(s.logger, watcher.DefaultDebounce, func(paths []string) {
		s.reloadChangedFiles(notify, paths)
	})
	if err != nil {
		s.logger.Error("failed to start file watcher", "err", err)
		return
	}
	for _, root := range roots {
		if err := w.AddRoot(root); err != nil {
			s.logger.Error("failed to watch workspace root", "root", root, "err", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	s.watchMutex.Lock()
	if s.watch != nil {
		s.watchMutex.Unlock()
		cancel()
		w.Close()
		return
	}
	s.watch = w
	s.watchStop = cancel
	s.watchMutex.Unlock()

	go w.Run(ctx)
}

func (s *Server) stopWatcher() {
	s.watchMutex.Lock()
	defer s.watchMutex.Unlock()
	if s.watch == nil {
		return
	}
	s.watchStop()
	s.watch.Close()
	s.watch = nil
	s.watchStop = nil
}

// reloadChangedFiles refreshes files changed on disk outside the editor.
// Editor-owned documents keep the editor's text; deleted files leave the
// store.
func (s *Server) reloadChangedFiles(notify glsp.NotifyFunc, paths []string) {
	for _, path := range paths {
		uri := workspace.URIForPath(path)
		if s.isOpen(uri) {
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			s.store.Delete(uri)
			continue
		}
		s.syncDocument(notify, uri, content)
	}
}

func (s *Server) setOpen(uri protocol.DocumentUri) {
	s.openDocsMutex.Lock()
	s.openDocs[uri] = struct{}{}
	s.openDocsMutex.Unlock()
}

func (s *Server) setClosed(uri protocol.DocumentUri) {
	s.openDocsMutex.Lock()
	delete(s.openDocs, uri)
	s.openDocsMutex.Unlock()
}

func (s *Server) isOpen(uri protocol.DocumentUri) bool {
	s.openDocsMutex.Lock()
	defer s.openDocsMutex.Unlock()
	_, ok := s.openDocs[uri]
	return ok
}

func ptr[T any](v T) *T {
	return &v
}
