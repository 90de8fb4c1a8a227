package workspace

import (
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/protolens/protolens/internal/syntax"
)

// CompletionItems returns every enum and message name declared in pkg,
// deduplicated by label. Enum items are collected before message items; the
// final sort by label makes the result independent of collection order.
func (s *Store) CompletionItems(pkg string) []protocol.CompletionItem {
	collect := func(pred func(*sitter.Node) bool, kind protocol.CompletionItemKind) []protocol.CompletionItem {
		var items []protocol.CompletionItem
		for _, tree := range s.TreesForPackage(pkg) {
			content := s.Text(tree.URI())
			for _, n := range tree.FindAll(pred) {
				k := kind
				items = append(items, protocol.CompletionItem{
					Label: n.Content(content),
					Kind:  &k,
				})
			}
		}
		return items
	}

	items := collect(syntax.IsEnumName, protocol.CompletionItemKindEnum)
	items = append(items, collect(syntax.IsMessageName, protocol.CompletionItemKindStruct)...)

	sort.SliceStable(items, func(i, j int) bool { return items[i].Label < items[j].Label })

	deduped := items[:0]
	for _, item := range items {
		if len(deduped) == 0 || deduped[len(deduped)-1].Label != item.Label {
			deduped = append(deduped, item)
		}
	}
	return deduped
}
