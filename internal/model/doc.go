// Package model defines the data types shared across jsonld-cli packages.
//
// The central types are Finding and LintReport, which describe the results
// of the structural linter, and RemoteResource, which describes a document
// fetched from a secondary source (a remote context, frame, or referenced
// document). The types in this package are plain values with no behavior
// beyond formatting; all processing logic lives in the packages that
// produce or consume them.
package model
