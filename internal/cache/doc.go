// Package cache provides SQLite-backed storage for fetched secondary
// resources (remote contexts, frames, and referenced documents).
//
// Published JSON-LD contexts are versioned by IRI and change rarely, so a
// local cache removes the dominant latency from repeated invocations:
// pipelines that compact thousands of documents against schema.org would
// otherwise fetch the same context on every run.
//
// The cache is opt-in (--cache) and lives under the XDG cache directory.
// Entries are keyed by URL and served only while younger than the
// configured max age; stale entries are replaced on the next fetch.
package cache
