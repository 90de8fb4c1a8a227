// Package workspace owns the cross-file state of the server: source text and
// parsed trees per file, grouped by declared proto package, kept current by
// eager import-graph traversal. The query services (hover, definition,
// completion, rename, references, symbols, diagnostics) read that state and
// never touch the wire protocol.
package workspace

import (
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/protolens/protolens/internal/syntax"
)

// DefaultImportDepth bounds transitive import loading when the caller does
// not pick its own bound.
const DefaultImportDepth = 8

// Store maps file identities to their source text and parsed tree. Text and
// trees live behind separate locks so read-heavy query paths do not contend
// with each other; parsing is serialized inside syntax.Parser.
type Store struct {
	parser *syntax.Parser
	logger commonlog.Logger

	docsMutex *sync.RWMutex
	docs      map[protocol.DocumentUri][]byte

	treesMutex *sync.RWMutex
	trees      map[protocol.DocumentUri]*syntax.Tree

	rootsMutex   *sync.Mutex
	indexedRoots map[string]struct{}
}

func NewStore(logger commonlog.Logger) *Store {
	return &Store{
		parser:       syntax.NewParser(),
		logger:       logger,
		docsMutex:    &sync.RWMutex{},
		docs:         make(map[protocol.DocumentUri][]byte),
		treesMutex:   &sync.RWMutex{},
		trees:        make(map[protocol.DocumentUri]*syntax.Tree),
		rootsMutex:   &sync.Mutex{},
		indexedRoots: make(map[string]struct{}),
	}
}

// Upsert stores content for uri, re-parses it, and eagerly loads every
// transitive import it can resolve against includePaths, so that cross-file
// queries issued afterwards see a complete picture. The visited set is fresh
// per call: re-upserting a file re-walks its imports, but one call never
// revisits a file (import cycles) and never descends past maxDepth. Imports
// already in the store keep their stored text, but the traversal still
// descends through them so their own imports load.
//
// The returned slice lists every import path the traversal could not resolve,
// for diagnostic reporting.
func (s *Store) Upsert(uri protocol.DocumentUri, content []byte, includePaths []string, maxDepth int) []string {
	visited := make(map[protocol.DocumentUri]struct{})
	var unresolved []string
	s.upsert(uri, content, includePaths, maxDepth, visited, &unresolved)
	return unresolved
}

func (s *Store) upsert(uri protocol.DocumentUri, content []byte, includePaths []string, depth int, visited map[protocol.DocumentUri]struct{}, unresolved *[]string) {
	if _, seen := visited[uri]; seen {
		return
	}
	visited[uri] = struct{}{}

	tree, err := s.parser.Parse(uri, content)
	if err != nil {
		s.logger.Error("parse failed", "uri", uri, "err", err)
		return
	}

	s.docsMutex.Lock()
	s.docs[uri] = content
	s.docsMutex.Unlock()

	s.treesMutex.Lock()
	s.trees[uri] = tree
	s.treesMutex.Unlock()

	s.expandImports(tree, content, includePaths, depth, visited, unresolved)
}

// expandImports walks tree's import list, loading files not yet in the store
// and descending into files that are. A tree parsed earlier without import
// expansion (workspace indexing, shallow upserts) must not cut the traversal
// short, so already-loaded imports are re-walked from their stored tree
// instead of being skipped.
func (s *Store) expandImports(tree *syntax.Tree, content []byte, includePaths []string, depth int, visited map[protocol.DocumentUri]struct{}, unresolved *[]string) {
	if depth <= 0 {
		return
	}

	for _, importPath := range tree.ImportPaths(content) {
		resolved, ok := ResolveImport(importPath, includePaths)
		if !ok {
			*unresolved = append(*unresolved, importPath)
			continue
		}

		importURI := URIForPath(resolved)
		if _, seen := visited[importURI]; seen {
			continue
		}

		if loaded, ok := s.Tree(importURI); ok {
			visited[importURI] = struct{}{}
			s.expandImports(loaded, s.Text(importURI), includePaths, depth-1, visited, unresolved)
			continue
		}

		imported, err := os.ReadFile(resolved)
		if err != nil {
			s.logger.Error("failed to read imported file", "path", resolved, "err", err)
			*unresolved = append(*unresolved, importPath)
			continue
		}
		s.upsert(importURI, imported, includePaths, depth-1, visited, unresolved)
	}
}

// Tree returns the parsed tree for uri.
func (s *Store) Tree(uri protocol.DocumentUri) (*syntax.Tree, bool) {
	s.treesMutex.RLock()
	defer s.treesMutex.RUnlock()
	tree, ok := s.trees[uri]
	return tree, ok
}

// Text returns the stored source text for uri; missing files yield empty
// text, matching how every query treats unknown documents.
func (s *Store) Text(uri protocol.DocumentUri) []byte {
	s.docsMutex.RLock()
	defer s.docsMutex.RUnlock()
	return s.docs[uri]
}

// Trees returns every loaded tree.
func (s *Store) Trees() []*syntax.Tree {
	s.treesMutex.RLock()
	defer s.treesMutex.RUnlock()

	out := make([]*syntax.Tree, 0, len(s.trees))
	for _, tree := range s.trees {
		out = append(out, tree)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URI() < out[j].URI() })
	return out
}

// TreesForPackage returns every loaded tree whose declared package is pkg.
func (s *Store) TreesForPackage(pkg string) []*syntax.Tree {
	var out []*syntax.Tree
	for _, tree := range s.Trees() {
		if s.PackageOf(tree) == pkg {
			out = append(out, tree)
		}
	}
	return out
}

// PackageOf returns the tree's declared package; files without a package
// clause belong to package ".".
func (s *Store) PackageOf(tree *syntax.Tree) string {
	pkg := tree.Package(s.Text(tree.URI()))
	if pkg == "" {
		return "."
	}
	return pkg
}

// Delete drops uri's text and tree.
func (s *Store) Delete(uri protocol.DocumentUri) {
	s.docsMutex.Lock()
	delete(s.docs, uri)
	s.docsMutex.Unlock()

	s.treesMutex.Lock()
	delete(s.trees, uri)
	s.treesMutex.Unlock()
}

// RenameFile re-keys text and tree from oldURI to newURI; the tree itself is
// retained, only its identity changes.
func (s *Store) RenameFile(oldURI, newURI protocol.DocumentUri) {
	s.docsMutex.Lock()
	if content, ok := s.docs[oldURI]; ok {
		delete(s.docs, oldURI)
		s.docs[newURI] = content
	}
	s.docsMutex.Unlock()

	s.treesMutex.Lock()
	if tree, ok := s.trees[oldURI]; ok {
		delete(s.trees, oldURI)
		tree.SetURI(newURI)
		s.trees[newURI] = tree
	}
	s.treesMutex.Unlock()
}

// IndexProgress reports one indexed file out of the total discovered under a
// root.
type IndexProgress func(path string, done, total int)

// IndexWorkspaceTree walks root, parsing every proto file not already loaded.
// Files are parsed without import expansion; imports either live under the
// same root or get pulled in later by an Upsert on an open file. Idempotent
// per root. A .gitignore at the root is honored.
func (s *Store) IndexWorkspaceTree(root string, progress IndexProgress) {
	s.rootsMutex.Lock()
	if _, done := s.indexedRoots[root]; done {
		s.rootsMutex.Unlock()
		return
	}
	s.indexedRoots[root] = struct{}{}
	s.rootsMutex.Unlock()

	var ignored *ignore.GitIgnore
	if matcher, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
		ignored = matcher
	}

	var files []string
	_ = filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr == nil && ignored != nil && ignored.MatchesPath(rel) {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(path), ".proto") {
			files = append(files, path)
		}
		return nil
	})

	for i, path := range files {
		uri := URIForPath(path)
		if _, loaded := s.Tree(uri); loaded {
			if progress != nil {
				progress(path, i+1, len(files))
			}
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			s.logger.Error("failed to read workspace file", "path", path, "err", err)
			continue
		}
		s.Upsert(uri, content, nil, 0)
		if progress != nil {
			progress(path, i+1, len(files))
		}
	}

	s.logger.Info("workspace indexing completed", "root", root, "files", len(files))
}

// ResolveImport resolves an import path against include directories, first
// existing file wins.
func ResolveImport(importPath string, includePaths []string) (string, bool) {
	for _, dir := range includePaths {
		candidate := filepath.Join(dir, filepath.FromSlash(importPath))
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
	}
	return "", false
}

// URIForPath converts a filesystem path to a file URI.
func URIForPath(path string) protocol.DocumentUri {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return protocol.DocumentUri("file://" + filepath.ToSlash(path))
}

// PathForURI converts a file URI back to a filesystem path, decoding any
// percent-encoding the client applied. Non-file URIs are returned as-is minus
// the scheme, which is as close to a path as they get.
func PathForURI(uri protocol.DocumentUri) string {
	path := strings.TrimPrefix(string(uri), "file://")
	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}
	return filepath.FromSlash(path)
}
