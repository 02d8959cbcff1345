package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/digitalbazaar/jsonld-cli/internal/model"
)

// TextWriter outputs lint reports as human-readable text, one finding per
// line, the way compilers report diagnostics:
//
//	doc.jsonld: WARNING keyword-lookalike at @Id: "@Id" looks like a JSON-LD keyword ...
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in text format.
func (w *TextWriter) Write(report *model.LintReport) (int, error) {
	var sb strings.Builder

	for _, f := range report.Findings {
		location := ""
		if f.Path != "" {
			location = " at " + f.Path
		}
		fmt.Fprintf(&sb, "%s: %s %s%s: %s\n",
			report.Source, f.Severity, f.Check, location, f.Message)
	}

	if len(report.Findings) == 0 {
		fmt.Fprintf(&sb, "%s: no issues found\n", report.Source)
	} else {
		fmt.Fprintf(&sb, "%s: %d error(s), %d warning(s), %d info\n",
			report.Source,
			report.Count(model.SeverityError),
			report.Count(model.SeverityWarning),
			report.Count(model.SeverityInfo))
	}

	return io.WriteString(w.output, sb.String())
}
