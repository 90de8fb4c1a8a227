package workspace

import (
	"sort"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// WorkspaceSymbols flattens every file's document symbol tree into one list,
// each entry tagged with its immediate enclosing symbol as container, and
// filters it by case-insensitive substring match. An empty query returns
// everything. Sorted by name then file identity.
func (s *Store) WorkspaceSymbols(query string) []protocol.SymbolInformation {
	query = strings.ToLower(query)

	var out []protocol.SymbolInformation
	for _, tree := range s.Trees() {
		symbols := tree.DocumentSymbols(s.Text(tree.URI()))
		out = append(out, flattenSymbols(tree.URI(), "", symbols, query)...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Location.URI < out[j].Location.URI
	})
	return out
}

func flattenSymbols(uri protocol.DocumentUri, container string, symbols []protocol.DocumentSymbol, query string) []protocol.SymbolInformation {
	var out []protocol.SymbolInformation
	for _, sym := range symbols {
		if query == "" || strings.Contains(strings.ToLower(sym.Name), query) {
			info := protocol.SymbolInformation{
				Name: sym.Name,
				Kind: sym.Kind,
				Location: protocol.Location{
					URI:   uri,
					Range: sym.Range,
				},
			}
			if container != "" {
				name := container
				info.ContainerName = &name
			}
			out = append(out, info)
		}
		out = append(out, flattenSymbols(uri, sym.Name, sym.Children, query)...)
	}
	return out
}
