package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const renameFixture = `syntax = "proto3";

package com.library;

message Book {
    message Author {
        string name = 1;
    }

    Author author = 1;
}

message Shelf {
    Book.Author curator = 1;
    Book book = 2;
    BookShelf bs = 3;
}

message BookShelf {
    Book top = 1;
}
`

func TestCanRename(t *testing.T) {
	t.Parallel()

	tree := parseFixture(t, renameFixture)
	src := []byte(renameFixture)

	name, ok := tree.CanRename(src, protocol.Position{Line: 4, Character: 9})
	require.True(t, ok)
	require.Equal(t, "Book", name.Content(src))

	// Field type references are not rename targets.
	_, ok = tree.CanRename(src, protocol.Position{Line: 13, Character: 5})
	require.False(t, ok)

	// Neither is the package clause.
	_, ok = tree.CanRename(src, protocol.Position{Line: 2, Character: 10})
	require.False(t, ok)
}

func TestRenameTopLevelMessage(t *testing.T) {
	t.Parallel()

	tree := parseFixture(t, renameFixture)
	src := []byte(renameFixture)

	edits, oldQ, newQ, ok := tree.RenameTree(src, protocol.Position{Line: 4, Character: 9}, "Kitab")
	require.True(t, ok)
	require.Equal(t, "Book", oldQ)
	require.Equal(t, "Kitab", newQ)

	// A top-level declaration has no enclosing scopes; only its own name is
	// edited here, everything else is the qualified pass below.
	require.Equal(t, []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 4, Character: 8},
			End:   protocol.Position{Line: 4, Character: 12},
		},
		NewText: "Kitab",
	}}, edits)

	fieldEdits := tree.RenameFields(src, oldQ, newQ)
	require.Len(t, fieldEdits, 3)
	require.Equal(t, "Kitab.Author", fieldEdits[0].NewText)
	require.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 13, Character: 4},
		End:   protocol.Position{Line: 13, Character: 15},
	}, fieldEdits[0].Range)
	require.Equal(t, "Kitab", fieldEdits[1].NewText)
	require.Equal(t, "Kitab", fieldEdits[2].NewText)
	require.Equal(t, uint32(19), fieldEdits[2].Range.Start.Line)
}

func TestRenameNestedMessage(t *testing.T) {
	t.Parallel()

	tree := parseFixture(t, renameFixture)
	src := []byte(renameFixture)

	edits, oldQ, newQ, ok := tree.RenameTree(src, protocol.Position{Line: 5, Character: 14}, "Writer")
	require.True(t, ok)
	require.Equal(t, "Book.Author", oldQ)
	require.Equal(t, "Book.Writer", newQ)

	// The declaration plus the bare reference inside Book.
	require.Equal(t, []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 5, Character: 12},
				End:   protocol.Position{Line: 5, Character: 18},
			},
			NewText: "Writer",
		},
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 9, Character: 4},
				End:   protocol.Position{Line: 9, Character: 10},
			},
			NewText: "Writer",
		},
	}, edits)

	fieldEdits := tree.RenameFields(src, oldQ, newQ)
	require.Equal(t, []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 13, Character: 4},
			End:   protocol.Position{Line: 13, Character: 15},
		},
		NewText: "Book.Writer",
	}}, fieldEdits)
}

func TestRenameFieldsIsDotBounded(t *testing.T) {
	t.Parallel()

	tree := parseFixture(t, renameFixture)
	src := []byte(renameFixture)

	// Renaming Book must leave BookShelf references alone.
	for _, edit := range tree.RenameFields(src, "Book", "Kitab") {
		require.NotEqual(t, "KitabShelf", edit.NewText)
	}
}

func TestReferences(t *testing.T) {
	t.Parallel()

	tree := parseFixture(t, renameFixture)
	src := []byte(renameFixture)

	ranges, qualified, ok := tree.ReferenceTree(src, protocol.Position{Line: 5, Character: 14})
	require.True(t, ok)
	require.Equal(t, "Book.Author", qualified)
	// Declaration plus the bare reference inside Book.
	require.Len(t, ranges, 2)

	fieldRanges := tree.ReferenceFields(src, qualified)
	require.Equal(t, []protocol.Range{{
		Start: protocol.Position{Line: 13, Character: 4},
		End:   protocol.Position{Line: 13, Character: 15},
	}}, fieldRanges)

	_, _, ok = tree.ReferenceTree(src, protocol.Position{Line: 13, Character: 5})
	require.False(t, ok)
}
