package processor

import (
	"github.com/piprate/json-gold/ld"
	"github.com/pkg/errors"

	"github.com/digitalbazaar/jsonld-cli/internal/config"
	"github.com/digitalbazaar/jsonld-cli/internal/input"
	"github.com/digitalbazaar/jsonld-cli/internal/rdfio"
)

// Processor wraps the JSON-LD engine with this CLI's option translation.
type Processor struct {
	proc   *ld.JsonLdProcessor
	cfg    *config.Config
	loader ld.DocumentLoader
}

// New creates a Processor. docLoader handles all secondary-resource loads
// and is normally a loader.PolicyLoader.
func New(cfg *config.Config, docLoader ld.DocumentLoader) *Processor {
	return &Processor{
		proc:   ld.NewJsonLdProcessor(),
		cfg:    cfg,
		loader: docLoader,
	}
}

// options builds the engine options for one operation. The base IRI is
// --base when given, otherwise the document's own URL.
func (p *Processor) options(doc *input.Document) *ld.JsonLdOptions {
	base := p.cfg.Base
	if base == "" && doc != nil {
		base = doc.URL
	}

	opts := ld.NewJsonLdOptions(base)
	opts.ProcessingMode = ld.JsonLd_1_1
	opts.DocumentLoader = p.loader
	return opts
}

// Expand expands the document to expanded document form.
func (p *Processor) Expand(doc *input.Document) ([]interface{}, error) {
	expanded, err := p.proc.Expand(doc.Data, p.options(doc))
	return expanded, errors.Wrap(err, "expansion failed")
}

// Compact compacts the document against context. When graph is true the
// document is wrapped in a top-level @graph before compaction, so the
// result always has one.
func (p *Processor) Compact(doc *input.Document, context interface{}, graph bool) (map[string]interface{}, error) {
	data := doc.Data
	if graph {
		expanded, err := p.Expand(doc)
		if err != nil {
			return nil, err
		}
		data = map[string]interface{}{"@graph": expanded}
	}

	compacted, err := p.proc.Compact(data, WrapContext(context), p.options(doc))
	return compacted, errors.Wrap(err, "compaction failed")
}

// Flatten flattens the document. A nil context leaves the result in
// expanded form; a non-nil context additionally compacts it.
func (p *Processor) Flatten(doc *input.Document, context interface{}) (interface{}, error) {
	if context != nil {
		context = WrapContext(context)
	}
	flattened, err := p.proc.Flatten(doc.Data, context, p.options(doc))
	return flattened, errors.Wrap(err, "flattening failed")
}

// Frame frames the document.
func (p *Processor) Frame(doc *input.Document, frame interface{}) (map[string]interface{}, error) {
	framed, err := p.proc.Frame(doc.Data, frame, p.options(doc))
	return framed, errors.Wrap(err, "framing failed")
}

// ToRDFOptions carries the toRdf-specific flags.
type ToRDFOptions struct {
	// Format is the requested serialization media type or shorthand.
	// Empty means application/n-quads.
	Format string

	// Generalized permits generalized RDF (blank node predicates).
	Generalized bool
}

// ToRDF serializes the document as an RDF dataset. The engine emits
// N-Quads; any other requested serialization is produced by streaming
// re-serialization.
func (p *Processor) ToRDF(doc *input.Document, rdfOpts ToRDFOptions) (string, error) {
	target := rdfOpts.Format
	if target == "" {
		target = "application/n-quads"
	}
	format, err := rdfio.MediaTypeFormat(target)
	if err != nil {
		return "", err
	}

	opts := p.options(doc)
	opts.Format = "application/n-quads"
	opts.ProduceGeneralizedRdf = rdfOpts.Generalized

	dataset, err := p.proc.ToRDF(doc.Data, opts)
	if err != nil {
		return "", errors.Wrap(err, "RDF serialization failed")
	}
	nquads, ok := dataset.(string)
	if !ok {
		return "", errors.Errorf("engine returned %T instead of serialized N-Quads", dataset)
	}

	nqFormat, _ := rdfio.MediaTypeFormat("application/n-quads")
	return rdfio.ConvertString(nquads, nqFormat, format)
}

// FromRDFOptions carries the RDF-to-JSON-LD conversion flags.
type FromRDFOptions struct {
	// NativeTypes converts xsd:integer/double/boolean literals to native
	// JSON values instead of typed value objects.
	NativeTypes bool

	// UseRdfType keeps rdf:type as a property instead of folding it into
	// @type.
	UseRdfType bool
}

// FromRDF converts an RDF serialization to JSON-LD expanded form. Input
// in a serialization other than N-Quads is first re-serialized, since the
// engine only parses N-Quads.
func (p *Processor) FromRDF(doc *input.Document, fromOpts FromRDFOptions) ([]interface{}, error) {
	from, err := rdfio.MediaTypeFormat(doc.Type.String())
	if err != nil {
		return nil, err
	}
	nqFormat, _ := rdfio.MediaTypeFormat("application/n-quads")

	nquads, err := rdfio.ConvertString(string(doc.Raw), from, nqFormat)
	if err != nil {
		return nil, err
	}

	opts := p.options(doc)
	opts.Format = "application/n-quads"
	opts.UseNativeTypes = fromOpts.NativeTypes
	opts.UseRdfType = fromOpts.UseRdfType

	converted, err := p.proc.FromRDF(nquads, opts)
	if err != nil {
		return nil, errors.Wrap(err, "RDF conversion failed")
	}
	expanded, ok := converted.([]interface{})
	if !ok {
		return nil, errors.Errorf("engine returned %T instead of expanded JSON-LD", converted)
	}
	return expanded, nil
}

// Canonize canonicalizes the document with URDNA2015 and returns the
// canonical N-Quads.
func (p *Processor) Canonize(doc *input.Document) (string, error) {
	opts := p.options(doc)
	opts.Format = "application/n-quads"
	opts.Algorithm = ld.AlgorithmURDNA2015

	normalized, err := p.proc.Normalize(doc.Data, opts)
	if err != nil {
		return "", errors.Wrap(err, "canonicalization failed")
	}
	nquads, ok := normalized.(string)
	if !ok {
		return "", errors.Errorf("engine returned %T instead of canonical N-Quads", normalized)
	}
	return nquads, nil
}

// WrapContext normalizes a context argument into the {"@context": ...}
// shape the engine expects. Inline term maps, context IRIs, and arrays
// are wrapped; a map that already has @context passes through.
func WrapContext(context interface{}) interface{} {
	if m, ok := context.(map[string]interface{}); ok {
		if _, has := m["@context"]; has {
			return m
		}
	}
	return map[string]interface{}{"@context": context}
}
