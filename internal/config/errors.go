package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidIndent is returned when the indent width is negative.
	// Zero is valid and means compact output with no indentation.
	ErrInvalidIndent = errors.New("invalid indent: must be non-negative")

	// ErrInvalidTimeout is returned when the fetch timeout is not positive.
	// A timeout of zero or negative would cause immediate fetch failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 to fall back to the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrUnknownAllowScheme is returned when the allow-list contains a
	// scheme other than http, https, or file. There is no sane way to load
	// a secondary resource over anything else.
	ErrUnknownAllowScheme = errors.New("unknown allow-list scheme: must be http, https, or file")
)
