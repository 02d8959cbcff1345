package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultIndent is the number of spaces per indentation level for JSON
	// output. Two spaces matches what jsonld.js playground and most linked
	// data tooling emit, which keeps diffs quiet when documents round-trip
	// through different tools.
	DefaultIndent = 2

	// DefaultTimeout bounds each secondary-resource fetch. Remote contexts
	// are usually small and served from CDNs; 30 seconds is generous while
	// still failing fast enough for interactive use.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxBodySize limits the response body size for fetched
	// documents. JSON-LD contexts are rarely larger than a few hundred
	// kilobytes; 10MB leaves room for large data documents while preventing
	// memory exhaustion from a misbehaving server.
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB

	// DefaultMaxRedirects caps redirect chains on fetches. Context IRIs
	// redirect at most once or twice in practice (http to https, version
	// pinning); ten matches net/http's own default.
	DefaultMaxRedirects = 10

	// DefaultCacheMaxAge is how long a cached remote document stays fresh.
	// Published contexts are versioned by IRI and change rarely, so a day
	// is conservative.
	DefaultCacheMaxAge = 24 * time.Hour

	// DefaultUserAgent identifies jsonld-cli in HTTP requests.
	DefaultUserAgent = "jsonld-cli/1.0 (+https://github.com/digitalbazaar/jsonld-cli)"

	// AppName is the application name used for XDG directory paths.
	AppName = "jsonld-cli"
)

// DefaultAllow is the default secondary-resource allow-list. Only network
// schemes are permitted: a document fetched from the network must not be
// able to pull arbitrary local files in as contexts. The "file" scheme is
// opt-in via --allow file.
func DefaultAllow() []string {
	return []string{"http", "https"}
}

// Config holds all configuration options for jsonld-cli.
// This struct is populated from defaults, the optional config file, and CLI
// flags, then passed through the application via dependency injection
// rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., LoaderConfig, OutputConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// Input names the primary input source: a file path, an http(s) URL,
	// or "-" for stdin. Empty also means stdin.
	Input string

	// InputType overrides input type detection. One of "json", "html",
	// "yaml", "nquads", "turtle", "ntriples", "trig", a media type, or
	// empty for automatic detection.
	InputType string

	// Base is the base IRI used to resolve relative IRIs in the document.
	Base string

	// Indent is the number of spaces per indentation level in JSON output.
	Indent int

	// NoNewline suppresses the trailing newline after the output.
	// The default (false) appends one so shell pipelines behave.
	NoNewline bool

	// Insecure disables TLS certificate verification on fetches.
	// Applies to both the primary input and secondary resources.
	Insecure bool

	// Allow is the secondary-resource scheme allow-list. Secondary loads
	// (remote contexts, frames, referenced documents) are rejected unless
	// their URL scheme appears here. The primary input is exempt.
	Allow []string

	// Safe makes every processing command lint its input first and abort
	// if any finding of warning severity or higher is present.
	Safe bool

	// Timeout bounds each individual fetch, not the whole invocation.
	Timeout time.Duration

	// MaxBodySize is the maximum response body size in bytes to read.
	// Responses larger than this are rejected, not truncated: a truncated
	// JSON document would fail parsing with a less useful error.
	MaxBodySize int64

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// CacheEnabled turns on the SQLite-backed cache for secondary
	// resources. Off by default: a format converter should not write to
	// disk unless asked.
	CacheEnabled bool

	// CacheDir is the directory holding the cache database.
	// Defaults to the XDG cache directory (~/.cache/jsonld-cli on Linux).
	CacheDir string

	// CacheMaxAge is how long a cached document is served without
	// revalidation. Zero means DefaultCacheMaxAge.
	CacheMaxAge time.Duration

	// Verbose enables detailed log output using slog.LevelDebug and makes
	// error output include stack traces.
	Verbose bool

	// ConfigFilePath is the path to the YAML config file. If empty, the
	// tool searches for .jsonld-cli in the current directory and then in
	// the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., indent, timeout).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Indent:      DefaultIndent,
		Allow:       DefaultAllow(),
		Timeout:     DefaultTimeout,
		MaxBodySize: DefaultMaxBodySize,
		UserAgent:   DefaultUserAgent,
		CacheDir:    XDGCacheDir(),
		CacheMaxAge: DefaultCacheMaxAge,
	}
}

// XDGCacheDir returns the XDG cache directory for jsonld-cli.
// On Linux: ~/.cache/jsonld-cli
// On macOS: ~/Library/Caches/jsonld-cli
// On Windows: %LOCALAPPDATA%\cache\jsonld-cli
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// XDGConfigDir returns the XDG config directory for jsonld-cli.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// SchemeAllowed reports whether the given URL scheme is on the
// secondary-resource allow-list. Comparison is case-insensitive on the
// allow-list side because entries come from user input; callers pass the
// already-lowercased scheme from url.Parse.
func (c *Config) SchemeAllowed(scheme string) bool {
	for _, s := range c.Allow {
		if strings.ToLower(s) == scheme {
			return true
		}
	}
	return false
}

// Validate checks the configuration for inconsistencies.
// It returns one of the sentinel errors from errors.go so that callers can
// match with errors.Is.
func (c *Config) Validate() error {
	if c.Indent < 0 {
		return ErrInvalidIndent
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	for _, s := range c.Allow {
		switch strings.ToLower(s) {
		case "http", "https", "file":
		default:
			return ErrUnknownAllowScheme
		}
	}
	return nil
}
