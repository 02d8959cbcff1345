package input

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// Type classifies a primary input document.
type Type int

const (
	// TypeUnknown means detection failed; callers fall back to TypeJSON.
	TypeUnknown Type = iota

	// TypeJSON is a JSON or JSON-LD document.
	TypeJSON

	// TypeHTML is an HTML page carrying embedded JSON-LD script elements.
	TypeHTML

	// TypeYAML is a YAML document converted to the equivalent JSON tree
	// before processing (YAML-LD).
	TypeYAML

	// TypeNQuads is the application/n-quads RDF serialization.
	TypeNQuads

	// TypeTurtle is the text/turtle RDF serialization.
	TypeTurtle

	// TypeNTriples is the application/n-triples RDF serialization.
	TypeNTriples

	// TypeTriG is the application/trig RDF serialization.
	TypeTriG
)

// String returns the canonical short name of the type.
func (t Type) String() string {
	switch t {
	case TypeJSON:
		return "json"
	case TypeHTML:
		return "html"
	case TypeYAML:
		return "yaml"
	case TypeNQuads:
		return "nquads"
	case TypeTurtle:
		return "turtle"
	case TypeNTriples:
		return "ntriples"
	case TypeTriG:
		return "trig"
	default:
		return "unknown"
	}
}

// IsRDF reports whether the type is an RDF serialization rather than a
// JSON-shaped document. RDF inputs are only accepted by the format command.
func (t Type) IsRDF() bool {
	switch t {
	case TypeNQuads, TypeTurtle, TypeNTriples, TypeTriG:
		return true
	default:
		return false
	}
}

// ParseType maps a --type flag value to a Type. Both short names ("html")
// and media types ("text/html") are accepted.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "jsonld", "application/json", "application/ld+json":
		return TypeJSON, nil
	case "html", "text/html", "application/xhtml+xml":
		return TypeHTML, nil
	case "yaml", "yml", "application/ld+yaml", "application/yaml":
		return TypeYAML, nil
	case "nquads", "n-quads", "application/n-quads", "text/x-nquads":
		return TypeNQuads, nil
	case "turtle", "ttl", "text/turtle":
		return TypeTurtle, nil
	case "ntriples", "n-triples", "application/n-triples":
		return TypeNTriples, nil
	case "trig", "application/trig":
		return TypeTriG, nil
	default:
		return TypeUnknown, fmt.Errorf("unknown input type %q", s)
	}
}

// DetectContentType maps an HTTP Content-Type header value to a Type.
// Unrecognized media types return TypeUnknown, including the +json suffix
// convention: application/activity+json and friends are JSON documents.
func DetectContentType(header string) Type {
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return TypeUnknown
	}

	if t, err := ParseType(mediaType); err == nil {
		return t
	}
	if strings.HasSuffix(mediaType, "+json") {
		return TypeJSON
	}
	return TypeUnknown
}

// DetectPath maps a filename extension to a Type.
func DetectPath(path string) Type {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonld":
		return TypeJSON
	case ".html", ".htm", ".xhtml":
		return TypeHTML
	case ".yaml", ".yml", ".yamlld":
		return TypeYAML
	case ".nq", ".nquads":
		return TypeNQuads
	case ".ttl", ".turtle":
		return TypeTurtle
	case ".nt", ".ntriples":
		return TypeNTriples
	case ".trig":
		return TypeTriG
	default:
		return TypeUnknown
	}
}
