package model

import "fmt"

// Severity represents how serious a lint finding is.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Severity int

const (
	// SeverityInfo indicates findings that do not affect processing.
	// Examples: stylistic issues, terms that shadow common vocabularies.
	// Documents with only info findings process identically either way.
	SeverityInfo Severity = iota

	// SeverityWarning indicates constructs that process today but are
	// fragile or likely unintended. Examples: keys shaped like JSON-LD
	// keywords, relative IRIs with no base to resolve against, malformed
	// language tags (which processors silently drop).
	SeverityWarning

	// SeverityError indicates constructs that are invalid JSON-LD and will
	// be rejected or silently discarded by a conforming processor.
	// Examples: unparseable JSON, empty keys, unknown @-keywords,
	// unsupported @version values.
	SeverityError
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON encodes the severity as its string form so that JSON lint
// reports read "WARNING" rather than an opaque integer.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes the string form produced by MarshalJSON.
func (s *Severity) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"INFO"`:
		*s = SeverityInfo
	case `"WARNING"`:
		*s = SeverityWarning
	case `"ERROR"`:
		*s = SeverityError
	default:
		return fmt.Errorf("unknown severity %s", data)
	}
	return nil
}
