// Package config loads per-workspace-root settings from a protolens TOML
// file and assembles the include path list every import resolution runs
// against.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/protolens/protolens/internal/workspace"
)

// Config file names probed in order inside each workspace root.
var configFileNames = []string{".protolens.toml", "protolens.toml"}

// Config is the per-workspace settings block.
type Config struct {
	IncludePaths            []string     `toml:"include_paths"`
	SingleFileMode          bool         `toml:"single_file_mode"`
	DisableParseDiagnostics bool         `toml:"disable_parse_diagnostics"`
	Experimental            Experimental `toml:"experimental"`
	Path                    Tools        `toml:"path"`
}

type Experimental struct {
	UseProtocDiagnostics bool `toml:"use_protoc_diagnostics"`
}

// Tools locates the external executables the server shells out to.
type Tools struct {
	ClangFormat string `toml:"clang_format"`
	Protoc      string `toml:"protoc"`
}

// file mirrors the TOML document layout: settings nest under [config].
type file struct {
	Config Config `toml:"config"`
}

func Default() Config {
	return Config{
		Path: Tools{
			ClangFormat: "clang-format",
			Protoc:      "protoc",
		},
	}
}

// Load reads the first config file found in root, falling back to defaults
// when none exists or the file does not parse.
func Load(root string) Config {
	for _, name := range configFileNames {
		content, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}
		parsed := file{Config: Default()}
		if err := toml.Unmarshal(content, &parsed); err != nil {
			break
		}
		if parsed.Config.Path.ClangFormat == "" {
			parsed.Config.Path.ClangFormat = "clang-format"
		}
		if parsed.Config.Path.Protoc == "" {
			parsed.Config.Path.Protoc = "protoc"
		}
		return parsed.Config
	}
	return Default()
}

// WorkspaceConfigs tracks every workspace root the client announced, each
// with its loaded Config, and answers which root a document belongs to.
type WorkspaceConfigs struct {
	mutex *sync.RWMutex
	roots map[string]Config

	cliIncludePaths  []string
	initIncludePaths []string
}

func NewWorkspaceConfigs(cliIncludePaths []string) *WorkspaceConfigs {
	return &WorkspaceConfigs{
		mutex:           &sync.RWMutex{},
		roots:           make(map[string]Config),
		cliIncludePaths: cliIncludePaths,
	}
}

// SetInitIncludePaths records include paths supplied through the protocol's
// initialization options.
func (w *WorkspaceConfigs) SetInitIncludePaths(paths []string) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.initIncludePaths = paths
}

// AddWorkspace loads the config for a workspace folder's root directory.
func (w *WorkspaceConfigs) AddWorkspace(folder protocol.WorkspaceFolder) {
	root := workspace.PathForURI(protocol.DocumentUri(folder.URI))
	cfg := Load(root)

	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.roots[root] = cfg
}

// NoWorkspaceMode registers the filesystem root with default settings, so
// single files opened without any workspace folder still resolve to a
// config.
func (w *WorkspaceConfigs) NoWorkspaceMode() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.roots[string(filepath.Separator)] = Default()
}

// WorkspaceFor returns the workspace root containing uri.
func (w *WorkspaceConfigs) WorkspaceFor(uri protocol.DocumentUri) (string, bool) {
	path := workspace.PathForURI(uri)

	w.mutex.RLock()
	defer w.mutex.RUnlock()

	best := ""
	for root := range w.roots {
		if !containsPath(root, path) {
			continue
		}
		// Nested roots: the deepest match wins.
		if len(root) > len(best) {
			best = root
		}
	}
	return best, best != ""
}

// ConfigFor returns the settings of the workspace containing uri.
func (w *WorkspaceConfigs) ConfigFor(uri protocol.DocumentUri) (Config, bool) {
	root, ok := w.WorkspaceFor(uri)
	if !ok {
		return Config{}, false
	}
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.roots[root], true
}

// IncludePathsFor assembles the ordered include path list for uri's
// workspace: config paths first, then CLI paths, then initialization-option
// paths, then the workspace root itself. Relative entries resolve against
// the root.
func (w *WorkspaceConfigs) IncludePathsFor(uri protocol.DocumentUri) ([]string, bool) {
	root, ok := w.WorkspaceFor(uri)
	if !ok {
		return nil, false
	}
	cfg, _ := w.ConfigFor(uri)

	w.mutex.RLock()
	cli := w.cliIncludePaths
	init := w.initIncludePaths
	w.mutex.RUnlock()

	var paths []string
	for _, group := range [][]string{cfg.IncludePaths, cli, init} {
		for _, p := range group {
			if !filepath.IsAbs(p) {
				p = filepath.Join(root, p)
			}
			paths = append(paths, p)
		}
	}
	return append(paths, root), true
}

func containsPath(root, path string) bool {
	root = filepath.Clean(root)
	if root == string(filepath.Separator) {
		return true
	}
	return path == root || strings.HasPrefix(path, root+string(filepath.Separator))
}
