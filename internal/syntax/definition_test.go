package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDefinitions(t *testing.T) {
	t.Parallel()

	content := `syntax = "proto3";

package com.book;

message Book {
    message Author {
        string name = 1;
        string country = 2;
    };

    Author author = 1;
    string isbn = 2;
}
`
	tree := parseFixture(t, content)
	src := []byte(content)

	text, ok := tree.TextAt(src, protocol.Position{Line: 10, Character: 5})
	require.True(t, ok)
	require.Equal(t, "Author", text)

	ranges := tree.Definitions(src, text)
	require.Len(t, ranges, 1)
	require.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 5, Character: 12},
		End:   protocol.Position{Line: 5, Character: 18},
	}, ranges[0])

	require.Empty(t, tree.Definitions(src, "Publisher"))
}

func TestDefinitionsNestedPath(t *testing.T) {
	t.Parallel()

	content := `syntax = "proto3";

package com.nesting;

message Outer {
    message Inner {
        string name = 1;
    }
}

message Other {
    message Inner {
        string name = 1;
    }
}
`
	tree := parseFixture(t, content)
	src := []byte(content)

	// The dotted path binds to Outer's Inner only.
	ranges := tree.Definitions(src, "Outer.Inner")
	require.Len(t, ranges, 1)
	require.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 5, Character: 12},
		End:   protocol.Position{Line: 5, Character: 17},
	}, ranges[0])

	// The bare name binds to both declarations.
	require.Len(t, tree.Definitions(src, "Inner"), 2)

	require.Empty(t, tree.Definitions(src, "Outer.Missing"))
}
