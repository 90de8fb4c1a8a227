// Package ident splits dotted proto identifiers into package and local parts.
//
// A qualified name like `com.library.Book.Author` is a package prefix
// (`com.library`, the maximal leading run of lower-case-initial segments)
// followed by a dotted chain of nested type names (`Book.Author`, each
// upper-case-initial). A leading dot marks the fully-absolute spelling and is
// not part of either component.
package ident

import (
	"strings"
	"unicode"
)

// SplitPackageAndLocal splits identifier into its package prefix and local
// nested-type path. The package is empty when the identifier has no dot or is
// a pure nested-type path (every segment upper-case-initial); callers resolve
// such names in their current package.
func SplitPackageAndLocal(identifier string) (pkg string, local string) {
	identifier = strings.TrimPrefix(identifier, ".")
	if identifier == "" {
		return "", ""
	}
	if !strings.Contains(identifier, ".") {
		return "", identifier
	}

	segments := strings.Split(identifier, ".")
	split := 0
	for split < len(segments) && isPackageSegment(segments[split]) {
		split++
	}

	return strings.Join(segments[:split], "."), strings.Join(segments[split:], ".")
}

// IsNestedTypePath reports whether identifier is a dotted chain of type names
// with no package prefix, like `Outer.Inner`.
func IsNestedTypePath(identifier string) bool {
	identifier = strings.TrimPrefix(identifier, ".")
	if !strings.Contains(identifier, ".") {
		return false
	}
	pkg, _ := SplitPackageAndLocal(identifier)
	return pkg == ""
}

func isPackageSegment(segment string) bool {
	if segment == "" {
		return false
	}
	first := []rune(segment)[0]
	return !unicode.IsUpper(first)
}
