package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/protolens/protolens/internal/workspace"
)

func (s *Server) Initialize(glspCtx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	folders := params.WorkspaceFolders
	if len(folders) == 0 && params.RootURI != nil {
		folders = []protocol.WorkspaceFolder{{URI: *params.RootURI}}
	}

	if len(folders) == 0 {
		s.configs.NoWorkspaceMode()
	}
	for _, folder := range folders {
		s.configs.AddWorkspace(folder)
		s.rootsMutex.Lock()
		s.roots = append(s.roots, workspace.PathForURI(folder.URI))
		s.rootsMutex.Unlock()
	}

	if paths := includePathsFromOptions(params.InitializationOptions); len(paths) > 0 {
		s.configs.SetInitIncludePaths(paths)
	}

	capabilities := s.handler.CreateServerCapabilities()
	capabilities.Workspace = &protocol.ServerCapabilitiesWorkspace{
		FileOperations: &protocol.ServerCapabilitiesWorkspaceFileOperations{
			DidCreate: protoFileOperations(),
			DidRename: protoFileOperations(),
			DidDelete: protoFileOperations(),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    s.name,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) Initialized(glspCtx *glsp.Context, params *protocol.InitializedParams) error {
	s.rootsMutex.Lock()
	roots := append([]string(nil), s.roots...)
	s.rootsMutex.Unlock()

	for _, root := range roots {
		if cfg, ok := s.configs.ConfigFor(workspace.URIForPath(root)); ok && cfg.SingleFileMode {
			continue
		}
		s.store.IndexWorkspaceTree(root, nil)
	}

	s.startWatcher(glspCtx.Notify, roots)
	return nil
}

func (s *Server) Shutdown(glspCtx *glsp.Context) error {
	s.stopWatcher()
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) Exit(_ *glsp.Context) error {
	return nil
}

func (s *Server) SetTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// includePathsFromOptions pulls includePaths out of the client's untyped
// initializationOptions payload.
func includePathsFromOptions(options any) []string {
	opts, ok := options.(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := opts["includePaths"].([]any)
	if !ok {
		return nil
	}
	var paths []string
	for _, entry := range raw {
		if path, ok := entry.(string); ok {
			paths = append(paths, path)
		}
	}
	return paths
}

func protoFileOperations() *protocol.FileOperationRegistrationOptions {
	return &protocol.FileOperationRegistrationOptions{
		Filters: []protocol.FileOperationFilter{
			{Pattern: protocol.FileOperationPattern{Glob: "**/*.proto"}},
		},
	}
}
