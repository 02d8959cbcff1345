// Package report renders lint results for output.
//
// A Writer renders one model.LintReport to its destination. Three
// implementations cover the lint --format values: TextWriter for
// terminals, JSONWriter for tool integration, and MarkdownWriter for
// documentation and CI summaries.
package report
