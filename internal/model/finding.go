package model

import "time"

// Finding is a single issue reported by the structural linter.
type Finding struct {
	// Check identifies the lint check that produced this finding,
	// e.g. "keyword-lookalike" or "language-tag".
	Check string `json:"check"`

	// Severity is the impact level of the finding.
	Severity Severity `json:"severity"`

	// Path locates the offending value inside the document using dotted
	// JSON-path notation, e.g. "@context.name" or "@graph.3.@id".
	// Empty when the finding applies to the document as a whole.
	Path string `json:"path,omitempty"`

	// Message is a human-readable description of the problem.
	Message string `json:"message"`
}

// LintReport collects the findings for one linted input.
type LintReport struct {
	// Source names the linted input: a file path, a URL, or "stdin".
	Source string `json:"source"`

	// CheckedAt records when the lint run happened.
	CheckedAt time.Time `json:"checked_at"`

	// Findings holds all issues in document order. Empty means clean.
	Findings []Finding `json:"findings"`
}

// Count returns the number of findings at exactly the given severity.
func (r *LintReport) Count(s Severity) int {
	var n int
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// HasBlocking reports whether any finding is warning severity or higher.
// Blocking findings make lint exit non-zero and abort safe-mode processing.
func (r *LintReport) HasBlocking() bool {
	for _, f := range r.Findings {
		if f.Severity >= SeverityWarning {
			return true
		}
	}
	return false
}
