package model

import "time"

// RemoteResource is a secondary document fetched by the loader: a remote
// context, a remote frame, or a document referenced by IRI. It carries
// everything the cache needs to replay the fetch without the network.
type RemoteResource struct {
	// URL is the final URL of the resource after redirects.
	URL string

	// ContentType is the media type reported by the server, without
	// parameters ("application/ld+json", not "...; charset=utf-8").
	ContentType string

	// ContextURL is the target of an HTTP Link header with
	// rel="http://www.w3.org/ns/json-ld#context", when the server supplied
	// one for a plain JSON response. Empty otherwise.
	ContextURL string

	// Body is the raw response body.
	Body []byte

	// FetchedAt records when the resource was retrieved, for cache
	// freshness decisions.
	FetchedAt time.Time
}
