package workspace

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Rename rewrites every workspace reference to the symbol whose
// package-relative qualified name is oldQualified, declared in
// currentPackage, into newQualified. Edits for the declaration file's own
// lexical scopes come from syntax.Tree.RenameTree and are the transport
// layer's job to merge in; this pass covers the qualified spellings.
//
// Files in the declaring package may reference the symbol by its bare nested
// path. Files in other packages must qualify it with the package, in either
// the relative or the leading-dot absolute form, so both spellings are
// rewritten there.
func (s *Store) Rename(currentPackage, oldQualified, newQualified string) map[protocol.DocumentUri][]protocol.TextEdit {
	out := make(map[protocol.DocumentUri][]protocol.TextEdit)
	for _, tree := range s.Trees() {
		content := s.Text(tree.URI())

		var edits []protocol.TextEdit
		for _, c := range candidateSpellings(currentPackage, s.PackageOf(tree), oldQualified, newQualified) {
			edits = append(edits, tree.RenameFields(content, c.old, c.new)...)
		}
		if len(edits) > 0 {
			out[tree.URI()] = edits
		}
	}
	return out
}

// References returns every workspace reference to the symbol, using the same
// spelling candidates as Rename.
func (s *Store) References(currentPackage, qualified string) []protocol.Location {
	var out []protocol.Location
	for _, tree := range s.Trees() {
		content := s.Text(tree.URI())
		for _, c := range candidateSpellings(currentPackage, s.PackageOf(tree), qualified, "") {
			for _, r := range tree.ReferenceFields(content, c.old) {
				out = append(out, protocol.Location{URI: tree.URI(), Range: r})
			}
		}
	}
	return out
}

type spelling struct {
	old string
	new string
}

func candidateSpellings(currentPackage, treePackage, oldQualified, newQualified string) []spelling {
	if treePackage == currentPackage {
		return []spelling{{old: oldQualified, new: newQualified}}
	}
	// Files without a package clause cannot be referenced from elsewhere.
	if currentPackage == "." {
		return nil
	}
	return []spelling{
		{old: currentPackage + "." + oldQualified, new: currentPackage + "." + newQualified},
		{old: "." + currentPackage + "." + oldQualified, new: "." + currentPackage + "." + newQualified},
	}
}
