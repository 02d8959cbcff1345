// Package lint implements the structural JSON-LD checks behind the lint
// subcommand and --safe mode.
//
// The checks are deliberately shallow: they look at the shape of the JSON
// document, not at what it means after expansion. Algorithmic validation
// (context resolution errors, invalid term definitions) belongs to the
// engine, which reports those as processing failures. What the engine
// does NOT report is the class of mistakes it is specified to ignore
// silently: keys that look like keywords but aren't, language tags it
// drops, relative IRIs with nothing to resolve against. Those silent
// discards are exactly what this linter surfaces.
package lint
