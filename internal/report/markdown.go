package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/digitalbazaar/jsonld-cli/internal/model"
)

// MarkdownWriter outputs lint reports in Markdown format.
// This format is designed for documentation and sharing, such as pasting
// the result of a lint run into a pull request comment.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the lint report in Markdown format.
func (w *MarkdownWriter) Write(report *model.LintReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeFindings(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with source information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.LintReport) {
	md.H1("JSON-LD Lint Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + report.Source + "`"},
			{"Checked At", report.CheckedAt.Format("2006-01-02 15:04:05 MST")},
			{"Status", w.statusText(report)},
		},
	})
	md.PlainText("")
}

// statusText returns the status text based on report state.
func (w *MarkdownWriter) statusText(report *model.LintReport) string {
	if report.Count(model.SeverityError) > 0 {
		return "❌ Errors found"
	}
	if report.Count(model.SeverityWarning) > 0 {
		return "⚠️ Warnings found"
	}
	return "✅ Clean"
}

// writeSummary writes the severity summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.LintReport) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Count"},
		Rows: [][]string{
			{"🔴 Error", strconv.Itoa(report.Count(model.SeverityError))},
			{"🟡 Warning", strconv.Itoa(report.Count(model.SeverityWarning))},
			{"⚪ Info", strconv.Itoa(report.Count(model.SeverityInfo))},
			{"**Total**", "**" + strconv.Itoa(len(report.Findings)) + "**"},
		},
	})
	md.PlainText("")
}

// writeFindings writes the detailed findings table.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, report *model.LintReport) {
	md.H2("Findings")
	md.PlainText("")

	if len(report.Findings) == 0 {
		md.PlainText("No issues found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Findings))
	for _, f := range report.Findings {
		path := f.Path
		if path == "" {
			path = "-"
		}
		rows = append(rows, []string{
			f.Severity.String(),
			f.Check,
			"`" + path + "`",
			f.Message,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Check", "Path", "Message"},
		Rows:   rows,
	})
	md.PlainText("")
}
