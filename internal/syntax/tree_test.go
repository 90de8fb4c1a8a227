package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func parseFixture(t *testing.T, content string) *Tree {
	t.Helper()
	tree, err := NewParser().Parse("file:///fixture.proto", []byte(content))
	require.NoError(t, err)
	return tree
}

func TestFindAllMessageNames(t *testing.T) {
	t.Parallel()

	content := `syntax = "proto3";

package com.book;

message Book {

    message Author {
        string name = 1;
        string country = 2;
    };
    // This is a multi line comment on the field name
    // Of a message called Book
    int64 isbn = 1;
    string title = 2;
    Author author = 3;
}
`
	tree := parseFixture(t, content)
	nodes := tree.FindAll(IsMessageName)
	require.Len(t, nodes, 2)
	require.Equal(t, "Book", nodes[0].Content([]byte(content)))
	require.Equal(t, "Author", nodes[1].Content([]byte(content)))
}

func TestPackageAndImports(t *testing.T) {
	t.Parallel()

	content := `syntax = "proto3";

package com.library.shelf;

import "com/library/book.proto";
import public "com/library/author.proto";

message Shelf {}
`
	tree := parseFixture(t, content)
	src := []byte(content)

	require.Equal(t, "com.library.shelf", tree.Package(src))
	require.Equal(t,
		[]string{"com/library/book.proto", "com/library/author.proto"},
		tree.ImportPaths(src),
	)

	node := tree.ImportPathNode(src, "com/library/author.proto")
	require.NotNil(t, node)
	require.Equal(t, uint32(5), node.StartPoint().Row)

	require.Nil(t, tree.ImportPathNode(src, "no/such/file.proto"))
}

func TestImportPathAt(t *testing.T) {
	t.Parallel()

	content := `syntax = "proto3";

import "com/library/book.proto";

message Shelf {}
`
	tree := parseFixture(t, content)
	src := []byte(content)

	path, ok := tree.ImportPathAt(src, protocol.Position{Line: 2, Character: 12})
	require.True(t, ok)
	require.Equal(t, "com/library/book.proto", path)

	_, ok = tree.ImportPathAt(src, protocol.Position{Line: 4, Character: 9})
	require.False(t, ok)
}

func TestPackageMissing(t *testing.T) {
	t.Parallel()

	content := `syntax = "proto3";

message Loose {}
`
	tree := parseFixture(t, content)
	require.Equal(t, "", tree.Package([]byte(content)))
}

func TestActionableNodeAt(t *testing.T) {
	t.Parallel()

	content := `syntax = "proto3";

package com.book;

message Book {
    message Author {
        string name = 1;
    }

    Author author = 1;
}
`
	tree := parseFixture(t, content)
	src := []byte(content)

	name := tree.ActionableNodeAt(src, protocol.Position{Line: 4, Character: 9})
	require.NotNil(t, name)
	require.True(t, IsMessageName(name))
	require.Equal(t, "Book", name.Content(src))

	ref := tree.ActionableNodeAt(src, protocol.Position{Line: 9, Character: 5})
	require.NotNil(t, ref)
	require.True(t, IsFieldType(ref))
	require.Equal(t, "Author", ref.Content(src))

	require.Nil(t, tree.ActionableNodeAt(src, protocol.Position{Line: 2, Character: 2}))
}

func TestAncestorNamesAt(t *testing.T) {
	t.Parallel()

	content := `syntax = "proto3";

package com.nesting;

message Outer {
    message Inner {
        message Leaf {
            string name = 1;
        }
    }
}
`
	tree := parseFixture(t, content)
	src := []byte(content)

	chain := tree.AncestorNamesAt(src, protocol.Position{Line: 6, Character: 17})
	require.Len(t, chain, 3)
	require.Equal(t, "Leaf", chain[0].Content(src))
	require.Equal(t, "Inner", chain[1].Content(src))
	require.Equal(t, "Outer", chain[2].Content(src))

	chain = tree.AncestorNamesAt(src, protocol.Position{Line: 4, Character: 9})
	require.Len(t, chain, 1)
	require.Equal(t, "Outer", chain[0].Content(src))
}
