// Package loader fetches documents and enforces the secondary-resource
// loading policy.
//
// Two layers live here. Fetcher is the HTTP mechanics: client
// construction (timeout, redirect cap, optional insecure TLS), the Accept
// header, body size limits, and Link-header context discovery. PolicyLoader
// sits on top and is what the JSON-LD engine sees: it implements
// json-gold's DocumentLoader interface and decides, per URL, whether a
// secondary load is permitted at all.
//
// The policy is the one piece of security-relevant logic this program
// owns. A document arriving from the network can reference arbitrary IRIs
// in @context; without a policy, processing untrusted input would let it
// read local files. Secondary loads are therefore restricted to the scheme
// allow-list (http and https unless the user opts in to file), while the
// primary input, named explicitly on the command line, is resolved by
// the input package without consulting the list.
//
// PolicyLoader also collapses duplicate concurrent fetches with
// singleflight and consults the optional SQLite cache before the network.
package loader
