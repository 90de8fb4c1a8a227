package syntax

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestPointPositionRoundTripASCII(t *testing.T) {
	t.Parallel()

	content := []byte("first line\nsecond line\nthird\n")
	pos := protocol.Position{Line: 1, Character: 7}

	point := PointForPosition(content, pos)
	require.Equal(t, sitter.Point{Row: 1, Column: 7}, point)
	require.Equal(t, pos, PositionForPoint(content, point))
}

func TestPointForPositionMultibyte(t *testing.T) {
	t.Parallel()

	// "héllo" puts a two-byte rune before the column under test; "𝕏" is a
	// surrogate pair in UTF-16 but four bytes in UTF-8.
	content := []byte("// héllo\n// 𝕏 marks\n")

	point := PointForPosition(content, protocol.Position{Line: 0, Character: 5})
	require.Equal(t, sitter.Point{Row: 0, Column: 6}, point)

	point = PointForPosition(content, protocol.Position{Line: 1, Character: 5})
	require.Equal(t, sitter.Point{Row: 1, Column: 7}, point)

	pos := PositionForPoint(content, sitter.Point{Row: 1, Column: 7})
	require.Equal(t, protocol.Position{Line: 1, Character: 5}, pos)
}

func TestPointForPositionClampsToLineEnd(t *testing.T) {
	t.Parallel()

	content := []byte("short\n")
	point := PointForPosition(content, protocol.Position{Line: 0, Character: 99})
	require.Equal(t, sitter.Point{Row: 0, Column: 5}, point)
}

func TestPositionForOffset(t *testing.T) {
	t.Parallel()

	content := []byte("ab\ncdé f\n")

	pos, ok := PositionForOffset(content, 0)
	require.True(t, ok)
	require.Equal(t, protocol.Position{Line: 0, Character: 0}, pos)

	// Offset 7 lands after the two-byte é on line 1.
	pos, ok = PositionForOffset(content, 7)
	require.True(t, ok)
	require.Equal(t, protocol.Position{Line: 1, Character: 3}, pos)

	_, ok = PositionForOffset(content, len(content)+1)
	require.False(t, ok)
	_, ok = PositionForOffset(content, -1)
	require.False(t, ok)
}

func TestOffsetForPosition(t *testing.T) {
	t.Parallel()

	content := []byte("ab\ncdé f\n")

	offset, ok := OffsetForPosition(content, protocol.Position{Line: 0, Character: 1})
	require.True(t, ok)
	require.Equal(t, 1, offset)

	// Column 3 on line 1 sits after the two-byte é.
	offset, ok = OffsetForPosition(content, protocol.Position{Line: 1, Character: 3})
	require.True(t, ok)
	require.Equal(t, 7, offset)

	// Columns past the line end clamp to the line end.
	offset, ok = OffsetForPosition(content, protocol.Position{Line: 0, Character: 99})
	require.True(t, ok)
	require.Equal(t, 2, offset)

	_, ok = OffsetForPosition(content, protocol.Position{Line: 9, Character: 0})
	require.False(t, ok)
}
