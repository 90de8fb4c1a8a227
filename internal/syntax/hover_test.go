package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const hoverFixture = `syntax = "proto3";

package com.books;

// A book is a physical object
// and also a literary work
//
// Either way it has pages
message Book {
    // Author is the writer of a book
    message Author {
        string name = 1;
    }

    Author author = 1;
}

message Comic {
    message Author {
        string pen_name = 1;
    }
}
`

func TestHover(t *testing.T) {
	t.Parallel()

	tree := parseFixture(t, hoverFixture)
	src := []byte(hoverFixture)

	doc, ok := tree.Hover(src, "Book")
	require.True(t, ok)
	require.Equal(t, "A book is a physical object\nand also a literary work\n\nEither way it has pages", doc)

	doc, ok = tree.Hover(src, "Book.Author")
	require.True(t, ok)
	require.Equal(t, "Author is the writer of a book", doc)

	// Comic.Author exists but has no documentation.
	_, ok = tree.Hover(src, "Comic.Author")
	require.False(t, ok)

	// Undotted lookup takes the first documented declaration of that name.
	doc, ok = tree.Hover(src, "Author")
	require.True(t, ok)
	require.Equal(t, "Author is the writer of a book", doc)

	_, ok = tree.Hover(src, "")
	require.False(t, ok)

	_, ok = tree.Hover(src, "Novel.Author")
	require.False(t, ok)
}

func TestPrecedingComments(t *testing.T) {
	t.Parallel()

	tree := parseFixture(t, hoverFixture)
	src := []byte(hoverFixture)

	name := tree.ActionableNodeAt(src, protocol.Position{Line: 8, Character: 9})
	require.NotNil(t, name)

	doc, ok := tree.PrecedingComments(src, name)
	require.True(t, ok)
	require.Equal(t, "A book is a physical object\nand also a literary work\n\nEither way it has pages", doc)

	// A declaration without comments above it reports none.
	comic := tree.ActionableNodeAt(src, protocol.Position{Line: 17, Character: 9})
	require.NotNil(t, comic)
	_, ok = tree.PrecedingComments(src, comic)
	require.False(t, ok)
}
