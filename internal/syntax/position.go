package syntax

import (
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// LSP positions count columns in UTF-16 code units; tree-sitter points count
// them in bytes. The two agree only on pure-ASCII lines, so every crossing of
// the boundary goes through the converters below with the line's actual
// bytes in hand.

// PointForPosition converts an LSP position to a tree-sitter point within
// content. Columns past the end of the line clamp to the line end.
func PointForPosition(content []byte, pos protocol.Position) sitter.Point {
	line := lineBytes(content, int(pos.Line))

	byteCol := 0
	utf16Col := uint32(0)
	for byteCol < len(line) && utf16Col < pos.Character {
		r, size := utf8.DecodeRune(line[byteCol:])
		byteCol += size
		utf16Col += utf16Len(r)
	}

	return sitter.Point{Row: pos.Line, Column: uint32(byteCol)}
}

// PositionForPoint converts a tree-sitter point to an LSP position within
// content.
func PositionForPoint(content []byte, p sitter.Point) protocol.Position {
	line := lineBytes(content, int(p.Row))
	if int(p.Column) < len(line) {
		line = line[:p.Column]
	}
	return protocol.Position{Line: p.Row, Character: utf16LenBytes(line)}
}

// PositionForOffset converts a byte offset into content to an LSP position.
// The column counts UTF-16 code units from the start of the containing line.
// Returns false when offset is out of bounds.
func PositionForOffset(content []byte, offset int) (protocol.Position, bool) {
	if offset < 0 || offset > len(content) {
		return protocol.Position{}, false
	}

	line := uint32(0)
	lineStart := 0
	for i := 0; i < offset; i++ {
		if content[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	return protocol.Position{
		Line:      line,
		Character: utf16LenBytes(content[lineStart:offset]),
	}, true
}

// OffsetForPosition converts an LSP position to a byte offset into content.
// Columns past the end of the line clamp to the line end. Returns false when
// the line does not exist.
func OffsetForPosition(content []byte, pos protocol.Position) (int, bool) {
	row := int(pos.Line)
	start := 0
	for ; row > 0 && start < len(content); start++ {
		if content[start] == '\n' {
			row--
		}
	}
	if row > 0 {
		return 0, false
	}

	line := content[start:]
	for i, b := range line {
		if b == '\n' {
			line = line[:i]
			break
		}
	}

	byteCol := 0
	utf16Col := uint32(0)
	for byteCol < len(line) && utf16Col < pos.Character {
		r, size := utf8.DecodeRune(line[byteCol:])
		byteCol += size
		utf16Col += utf16Len(r)
	}
	return start + byteCol, true
}

// RangeForNode converts a node's span to an LSP range.
func RangeForNode(content []byte, n *sitter.Node) protocol.Range {
	return protocol.Range{
		Start: PositionForPoint(content, n.StartPoint()),
		End:   PositionForPoint(content, n.EndPoint()),
	}
}

func lineBytes(content []byte, row int) []byte {
	start := 0
	for ; row > 0 && start < len(content); start++ {
		if content[start] == '\n' {
			row--
		}
	}
	end := start
	for end < len(content) && content[end] != '\n' {
		end++
	}
	return content[start:end]
}

func utf16LenBytes(b []byte) uint32 {
	n := uint32(0)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		n += utf16Len(r)
	}
	return n
}

func utf16Len(r rune) uint32 {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
