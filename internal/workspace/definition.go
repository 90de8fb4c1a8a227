package workspace

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/protolens/protolens/internal/ident"
)

// Definition resolves identifier relative to currentPackage and returns the
// name span of every user-defined declaration matching it. Identifiers
// without a package prefix look up in currentPackage; package-qualified and
// absolute spellings look up in the package they name.
func (s *Store) Definition(currentPackage, identifier string) []protocol.Location {
	pkg, local := ident.SplitPackageAndLocal(identifier)
	if pkg == "" {
		pkg = currentPackage
	}

	var out []protocol.Location
	for _, tree := range s.TreesForPackage(pkg) {
		content := s.Text(tree.URI())
		for _, r := range tree.Definitions(content, local) {
			out = append(out, protocol.Location{URI: tree.URI(), Range: r})
		}
	}
	return out
}
