// Package format shells out to clang-format and turns its replacement XML
// into text edits.
package format

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"os/exec"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/protolens/protolens/internal/syntax"
)

// Clang runs a clang-format executable. The document travels over stdin;
// --assume-filename tells clang-format to pick up the proto style rules and
// lets a .clang-format in the working directory apply.
type Clang struct {
	path    string
	workdir string
	logger  commonlog.Logger
}

func NewClang(path, workdir string, logger commonlog.Logger) *Clang {
	return &Clang{path: path, workdir: workdir, logger: logger}
}

// FormatDocument formats the whole document and returns the edits that
// transform content into the formatted output.
func (c *Clang) FormatDocument(ctx context.Context, filename string, content []byte) ([]protocol.TextEdit, error) {
	return c.run(ctx, filename, content)
}

// FormatRange formats only the lines covered by r. clang-format's --lines
// takes 1-based inclusive line numbers.
func (c *Clang) FormatRange(ctx context.Context, r protocol.Range, filename string, content []byte) ([]protocol.TextEdit, error) {
	lines := formatLinesArg(r)
	return c.run(ctx, filename, content, "--lines", lines)
}

func (c *Clang) run(ctx context.Context, filename string, content []byte, extraArgs ...string) ([]protocol.TextEdit, error) {
	args := append([]string{
		"--output-replacements-xml",
		"--assume-filename=" + filename,
	}, extraArgs...)

	cmd := exec.CommandContext(ctx, c.path, args...)
	cmd.Dir = c.workdir
	cmd.Stdin = bytes.NewReader(content)

	output, err := cmd.Output()
	if err != nil {
		c.logger.Error("clang-format failed", "path", c.path, "err", err)
		return nil, err
	}
	return editsFromReplacementXML(output, content)
}

func formatLinesArg(r protocol.Range) string {
	return fmt.Sprintf("%d:%d", r.Start.Line+1, r.End.Line+1)
}

type replacementList struct {
	XMLName      xml.Name      `xml:"replacements"`
	Replacements []replacement `xml:"replacement"`
}

type replacement struct {
	Offset int    `xml:"offset,attr"`
	Length int    `xml:"length,attr"`
	Text   string `xml:",chardata"`
}

// editsFromReplacementXML converts clang-format replacement XML into edits.
// Replacement offsets are byte offsets into content; the edit positions
// count UTF-16 code units from the start of the containing line, so lines
// with multi-byte characters convert correctly.
func editsFromReplacementXML(output, content []byte) ([]protocol.TextEdit, error) {
	var parsed replacementList
	if err := xml.Unmarshal(output, &parsed); err != nil {
		return nil, err
	}

	var edits []protocol.TextEdit
	for _, r := range parsed.Replacements {
		start, ok := syntax.PositionForOffset(content, r.Offset)
		if !ok {
			continue
		}
		end, ok := syntax.PositionForOffset(content, r.Offset+r.Length)
		if !ok {
			continue
		}
		edits = append(edits, protocol.TextEdit{
			Range:   protocol.Range{Start: start, End: end},
			NewText: r.Text,
		})
	}
	return edits, nil
}
