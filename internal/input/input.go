package input

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/digitalbazaar/jsonld-cli/internal/config"
	"github.com/digitalbazaar/jsonld-cli/internal/loader"
)

// Document is a resolved primary input.
type Document struct {
	// URL is the document's own URL: the fetched URL for network inputs,
	// a file:// URL for file inputs, empty for stdin. It serves as the
	// default base IRI when --base is not given.
	URL string

	// Type is the detected or overridden input type.
	Type Type

	// Data is the parsed JSON tree for JSON-shaped inputs (JSON, HTML
	// extraction, YAML conversion). Nil for RDF inputs.
	Data interface{}

	// Raw holds the input bytes. For RDF serializations this is what the
	// conversion layer consumes; for JSON-shaped inputs it is kept for
	// the linter, which needs the raw text to locate issues.
	Raw []byte
}

// Resolver turns the positional argument of a subcommand into a Document.
type Resolver struct {
	cfg     *config.Config
	fetcher *loader.Fetcher
	stdin   io.Reader
}

// NewResolver creates a Resolver. The fetcher is used for http(s) primary
// inputs; stdin is the reader used for "-" (os.Stdin in production,
// replaceable in tests).
func NewResolver(cfg *config.Config, fetcher *loader.Fetcher, stdin io.Reader) *Resolver {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Resolver{cfg: cfg, fetcher: fetcher, stdin: stdin}
}

// Resolve reads and decodes the primary input named by arg.
func (r *Resolver) Resolve(ctx context.Context, arg string) (*Document, error) {
	doc, err := r.read(ctx, arg)
	if err != nil {
		return nil, err
	}

	if doc.Type == TypeUnknown {
		doc.Type = TypeJSON
	}
	if err := r.decode(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ResolveRaw reads the primary input without decoding it. The linter uses
// this: it must see the raw bytes of a syntactically broken document, which
// Resolve would reject before any check could run.
func (r *Resolver) ResolveRaw(ctx context.Context, arg string) (*Document, error) {
	doc, err := r.read(ctx, arg)
	if err != nil {
		return nil, err
	}
	if doc.Type == TypeUnknown {
		doc.Type = TypeJSON
	}
	return doc, nil
}

// Decode parses an undecoded document obtained from ResolveRaw.
func (r *Resolver) Decode(doc *Document) error {
	return r.decode(doc)
}

// ResolveAuxiliary resolves a --context or --frame argument. A value
// starting with '{', '[', or '"' is parsed as inline JSON; anything else
// is resolved like a primary input (file, URL, or "-" for stdin) and must
// decode to a JSON tree.
func (r *Resolver) ResolveAuxiliary(ctx context.Context, arg string) (interface{}, error) {
	trimmed := strings.TrimSpace(arg)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, `"`) {
		v, err := decodeJSON([]byte(trimmed))
		return v, errors.Wrap(err, "failed to parse inline JSON argument")
	}

	doc, err := r.Resolve(ctx, arg)
	if err != nil {
		return nil, err
	}
	if doc.Data == nil {
		return nil, errors.Errorf("%s is not a JSON-shaped document", arg)
	}
	return doc.Data, nil
}

// read loads the raw input bytes and settles the document URL and type.
func (r *Resolver) read(ctx context.Context, arg string) (*Document, error) {
	overridden := TypeUnknown
	if r.cfg.InputType != "" {
		t, err := ParseType(r.cfg.InputType)
		if err != nil {
			return nil, err
		}
		overridden = t
	}

	switch {
	case arg == "" || arg == "-":
		data, err := io.ReadAll(io.LimitReader(r.stdin, r.cfg.MaxBodySize+1))
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
		if int64(len(data)) > r.cfg.MaxBodySize {
			return nil, errors.Errorf("stdin input exceeds %d bytes", r.cfg.MaxBodySize)
		}
		return &Document{Type: overridden, Raw: data}, nil

	case strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://"):
		res, err := r.fetcher.Fetch(ctx, arg)
		if err != nil {
			return nil, err
		}
		t := overridden
		if t == TypeUnknown {
			t = DetectContentType(res.ContentType)
		}
		if t == TypeUnknown {
			t = DetectPath(res.URL)
		}
		return &Document{URL: res.URL, Type: t, Raw: res.Body}, nil

	default:
		data, err := os.ReadFile(arg) //nolint:gosec // User-provided input path is intentional
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read input file %s", arg)
		}
		t := overridden
		if t == TypeUnknown {
			t = DetectPath(arg)
		}
		abs, err := filepath.Abs(arg)
		if err != nil {
			abs = arg
		}
		return &Document{URL: "file://" + filepath.ToSlash(abs), Type: t, Raw: data}, nil
	}
}

// decode parses doc.Raw into doc.Data according to doc.Type. RDF inputs
// stay raw.
func (r *Resolver) decode(doc *Document) error {
	switch doc.Type {
	case TypeJSON:
		data, err := decodeJSON(doc.Raw)
		if err != nil {
			return errors.Wrap(err, "failed to parse JSON input")
		}
		doc.Data = data
		return nil

	case TypeHTML:
		scripts, err := ExtractScripts(doc.Raw)
		if err != nil {
			return err
		}
		data, err := decodeHTML(scripts)
		if err != nil {
			return err
		}
		doc.Data = data
		return nil

	case TypeYAML:
		data, err := decodeYAML(doc.Raw)
		if err != nil {
			return errors.Wrap(err, "failed to parse YAML input")
		}
		doc.Data = data
		return nil

	default:
		// RDF serializations are consumed as raw bytes.
		return nil
	}
}

// decodeJSON parses JSON bytes to an interface tree, preserving number
// precision with json.Number the way the engine's own reader does.
func decodeJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// decodeHTML parses each extracted script block. A single block becomes
// the document itself; multiple blocks merge into one top-level array,
// which is how the JSON-LD API defines extraction from HTML.
func decodeHTML(scripts [][]byte) (interface{}, error) {
	if len(scripts) == 1 {
		v, err := decodeJSON(scripts[0])
		return v, errors.Wrap(err, "failed to parse embedded JSON-LD script")
	}

	merged := make([]interface{}, 0, len(scripts))
	for i, s := range scripts {
		v, err := decodeJSON(s)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse embedded JSON-LD script %d", i+1)
		}
		// Top-level arrays flatten into the merged array rather than
		// nesting, per the JSON-LD API's HTML extraction rules.
		if arr, ok := v.([]interface{}); ok {
			merged = append(merged, arr...)
			continue
		}
		merged = append(merged, v)
	}
	return merged, nil
}

// decodeYAML converts a YAML document to the equivalent JSON tree by
// round-tripping through JSON encoding. The round trip normalizes YAML's
// richer scalar types (ints, timestamps) into what the engine expects.
func decodeYAML(data []byte) (interface{}, error) {
	var y interface{}
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, err
	}

	jsonBytes, err := json.Marshal(y)
	if err != nil {
		return nil, err
	}
	return decodeJSON(jsonBytes)
}
