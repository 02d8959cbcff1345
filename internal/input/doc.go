// Package input resolves the primary input of a jsonld-cli invocation.
//
// The primary input is the one positional argument each subcommand takes:
// a file path, an http(s) URL, or "-" (or nothing) for stdin. Unlike
// secondary resources, the primary input is exempt from the
// scheme allow-list: the user named it on the command line, so there is no
// confused-deputy risk in reading it from wherever they pointed.
//
// Resolution covers source reading, input-type detection (explicit --type,
// HTTP Content-Type, filename extension, JSON fallback), and decoding:
// JSON documents are parsed to a tree, HTML documents have their embedded
// application/ld+json script elements extracted, YAML documents are
// converted to the equivalent JSON tree, and RDF serializations are kept
// as raw bytes for the conversion layer.
package input
