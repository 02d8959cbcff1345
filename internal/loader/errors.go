package loader

import "errors"

// Policy errors returned by PolicyLoader.
//
// Design decision: We use package-level sentinel errors so that callers
// and tests can match with errors.Is while wrapped messages still carry
// the offending URL.
var (
	// ErrSchemeNotAllowed is returned when a secondary resource's URL
	// scheme is not on the allow-list.
	ErrSchemeNotAllowed = errors.New("scheme not on the secondary-resource allow-list")

	// ErrRelativeURL is returned when a secondary reference is not an
	// absolute URL. The engine resolves references against the base IRI
	// before calling the loader, so a relative URL here means the document
	// had no usable base.
	ErrRelativeURL = errors.New("secondary reference is not an absolute URL (set --base or use absolute IRIs)")

	// ErrBodyTooLarge is returned when a response body exceeds the
	// configured size limit.
	ErrBodyTooLarge = errors.New("response body exceeds size limit")
)
