// Package protoc runs the reference protobuf compiler against a file and
// turns its stderr into diagnostics, as a second opinion next to the
// server's own syntactic checks.
package protoc

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// DiagnosticSource tags diagnostics relayed from the compiler.
const DiagnosticSource = "protoc"

type Runner struct {
	path   string
	logger commonlog.Logger
}

func NewRunner(path string, logger commonlog.Logger) *Runner {
	return &Runner{path: path, logger: logger}
}

// Collect compiles filePath with the given include paths, discarding the
// descriptor output, and returns one diagnostic per reported error. A protoc
// that cannot be executed yields no diagnostics; the server's own checks
// still stand.
func (r *Runner) Collect(ctx context.Context, filePath string, includePaths []string) []protocol.Diagnostic {
	args := make([]string, 0, 2*len(includePaths)+3)
	for _, p := range includePaths {
		args = append(args, "-I", p)
	}
	args = append(args, "-o", descriptorSink, filePath)

	cmd := exec.CommandContext(ctx, r.path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if _, isExit := err.(*exec.ExitError); !isExit {
		r.logger.Error("failed to run protoc", "path", r.path, "err", err)
		return nil
	}
	return ParseOutput(stderr.String())
}

// ParseOutput parses protoc's `file:line:col: message` stderr lines into
// diagnostics. Reported positions are 1-based; ranges are single-character
// spans at the reported location. Lines in any other shape are skipped.
func ParseOutput(output string) []protocol.Diagnostic {
	var diags []protocol.Diagnostic
	for _, line := range strings.Split(output, "\n") {
		location, message, found := strings.Cut(line, ": ")
		if !found {
			continue
		}
		parts := strings.Split(location, ":")
		if len(parts) < 3 {
			continue
		}

		lineNo, err := strconv.Atoi(parts[1])
		if err != nil || lineNo < 1 {
			continue
		}
		colNo, err := strconv.Atoi(parts[2])
		if err != nil || colNo < 1 {
			continue
		}

		severity := protocol.DiagnosticSeverityError
		source := DiagnosticSource
		diags = append(diags, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(lineNo - 1), Character: uint32(colNo - 1)},
				End:   protocol.Position{Line: uint32(lineNo - 1), Character: uint32(colNo)},
			},
			Severity: &severity,
			Source:   &source,
			Message:  message,
		})
	}
	return diags
}
