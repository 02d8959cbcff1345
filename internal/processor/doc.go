// Package processor translates CLI options into engine options and
// delegates every JSON-LD operation to github.com/piprate/json-gold.
//
// Nothing in here implements a JSON-LD algorithm. Each exported method is
// a thin adapter: it settles the base IRI (explicit --base wins over the
// document's own URL), builds a ld.JsonLdOptions carrying the policy
// loader, calls the engine, and hands RDF output to the rdfio package
// when a serialization other than N-Quads was requested.
package processor
