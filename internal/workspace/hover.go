package workspace

import (
	"github.com/protolens/protolens/internal/ident"
)

// Hover returns the documentation comment for the declaration identifier
// resolves to, searching the files of its package in order and taking the
// first documented match.
func (s *Store) Hover(currentPackage, identifier string) (string, bool) {
	pkg, local := ident.SplitPackageAndLocal(identifier)
	if pkg == "" {
		pkg = currentPackage
	}

	for _, tree := range s.TreesForPackage(pkg) {
		if doc, ok := tree.Hover(s.Text(tree.URI()), local); ok {
			return doc, true
		}
	}
	return "", false
}
