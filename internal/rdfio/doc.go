// Package rdfio converts between RDF serializations.
//
// The JSON-LD engine speaks exactly one RDF syntax, application/n-quads.
// Everything else the CLI accepts or emits (Turtle, TriG, N-Triples)
// goes through this package, which re-serializes by streaming quads from
// a decoder straight into an encoder. No RDF model of our own: the quads
// pass through untouched.
package rdfio
