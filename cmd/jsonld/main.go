// Package main provides the entry point for the jsonld CLI.
//
// jsonld is a command-line front end for JSON-LD document processing:
// formatting, linting, compaction, expansion, flattening, framing, RDF
// serialization, and URDNA2015 canonicalization.
//
// Usage:
//
//	jsonld expand document.jsonld
//	jsonld compact -c context.jsonld https://example.com/doc
//	cat doc.json | jsonld lint
//
// See --help for all available options.
package main

// main is the entry point for jsonld.
func main() {
	Execute()
}
