package report

import (
	"fmt"
	"io"

	"github.com/digitalbazaar/jsonld-cli/internal/model"
)

// Writer defines the interface for lint report output.
//
// Design decision: We use an interface so the lint command can pick a
// format at runtime and tests can write to buffers, with the same API.
type Writer interface {
	// Write renders the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.LintReport) (int, error)
}

// NewWriter returns the Writer for a --format value: "text", "json", or
// "markdown".
func NewWriter(format string, output io.Writer) (Writer, error) {
	switch format {
	case "", "text":
		return NewTextWriter(output), nil
	case "json":
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case "markdown", "md":
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("unknown report format %q (use text, json, or markdown)", format)
	}
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
