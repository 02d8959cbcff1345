package loader

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/piprate/json-gold/ld"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/digitalbazaar/jsonld-cli/internal/cache"
	"github.com/digitalbazaar/jsonld-cli/internal/config"
)

// PolicyLoader is the DocumentLoader handed to the JSON-LD engine. Every
// secondary resource the engine wants (remote contexts, remote frames,
// documents referenced by IRI) passes through LoadDocument, which
// enforces the scheme allow-list before anything touches the network or
// the filesystem.
type PolicyLoader struct {
	cfg     *config.Config
	fetcher *Fetcher
	cache   *cache.DocumentCache // nil when caching is disabled
	logger  *slog.Logger
	group   singleflight.Group
}

// interface guard
var _ ld.DocumentLoader = (*PolicyLoader)(nil)

// NewPolicyLoader creates a PolicyLoader. The cache may be nil.
func NewPolicyLoader(cfg *config.Config, fetcher *Fetcher, dc *cache.DocumentCache, logger *slog.Logger) *PolicyLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &PolicyLoader{
		cfg:     cfg,
		fetcher: fetcher,
		cache:   dc,
		logger:  logger,
	}
}

// LoadDocument implements ld.DocumentLoader.
//
// The engine's interface carries no context; fetches are bounded by the
// Fetcher's per-request timeout instead of caller cancellation, which
// matches the one-shot nature of a CLI invocation.
func (l *PolicyLoader) LoadDocument(u string) (*ld.RemoteDocument, error) {
	parsed, err := url.Parse(u)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid secondary resource URL %s", u)
	}
	if !parsed.IsAbs() {
		return nil, errors.Wrap(ErrRelativeURL, u)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if !l.cfg.SchemeAllowed(scheme) {
		return nil, errors.Wrapf(ErrSchemeNotAllowed,
			"%s (scheme %q; pass --allow %s to permit it)", u, scheme, scheme)
	}

	// Collapse concurrent loads of the same URL. json-gold resolves
	// contexts sequentially today, but the dedup also coalesces repeat
	// loads of one context IRI within a single document.
	v, err, _ := l.group.Do(u, func() (interface{}, error) {
		if scheme == "file" {
			return l.loadFile(parsed)
		}
		return l.loadHTTP(u)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ld.RemoteDocument), nil
}

// loadFile reads a file:// secondary resource. Reaching this point means
// the user passed --allow file.
func (l *PolicyLoader) loadFile(u *url.URL) (*ld.RemoteDocument, error) {
	path := u.Path
	if u.Host != "" && u.Host != "localhost" {
		return nil, errors.Errorf("unsupported file URL host %q in %s", u.Host, u)
	}

	l.logger.Debug("loading secondary resource from file", "path", path)

	data, err := os.ReadFile(path) //nolint:gosec // file scheme is explicitly allow-listed
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read secondary resource %s", u)
	}
	return remoteDocument(u.String(), "", data)
}

// loadHTTP fetches an http(s) secondary resource, consulting the cache
// first when one is configured.
func (l *PolicyLoader) loadHTTP(u string) (*ld.RemoteDocument, error) {
	ctx := context.Background()

	if l.cache != nil {
		maxAge := l.cfg.CacheMaxAge
		if maxAge == 0 {
			maxAge = config.DefaultCacheMaxAge
		}
		if res, err := l.cache.Get(ctx, u, maxAge); err == nil {
			l.logger.Debug("secondary resource served from cache", "url", u)
			return remoteDocument(res.URL, res.ContextURL, res.Body)
		} else if !errors.Is(err, cache.ErrMiss) {
			// A broken cache should not fail the run; log and fetch.
			l.logger.Warn("cache read failed", "url", u, "error", err)
		}
	}

	l.logger.Debug("fetching secondary resource", "url", u)

	res, err := l.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		if err := l.cache.Put(ctx, res); err != nil {
			l.logger.Warn("cache write failed", "url", u, "error", err)
		}
	}

	return remoteDocument(res.URL, res.ContextURL, res.Body)
}

// remoteDocument parses body into the engine's RemoteDocument shape.
func remoteDocument(docURL, contextURL string, body []byte) (*ld.RemoteDocument, error) {
	parsed, err := ld.DocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse secondary resource %s", docURL)
	}
	return &ld.RemoteDocument{
		DocumentURL: docURL,
		Document:    parsed,
		ContextURL:  contextURL,
	}, nil
}

// OpenCache opens the document cache configured in cfg, creating the cache
// directory as needed. Returns nil without error when caching is disabled.
func OpenCache(cfg *config.Config) (*cache.DocumentCache, error) {
	if !cfg.CacheEnabled {
		return nil, nil
	}

	dir := cfg.CacheDir
	if dir == "" {
		dir = config.XDGCacheDir()
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, errors.Wrapf(err, "failed to create cache directory %s", dir)
	}

	dc, err := cache.Open(filepath.Join(dir, "documents.db"), cache.DefaultOptions())
	if err != nil {
		return nil, err
	}

	// Opportunistic cleanup keeps the database from growing without
	// bound; entries past twice the freshness bound can never be served.
	maxAge := cfg.CacheMaxAge
	if maxAge == 0 {
		maxAge = config.DefaultCacheMaxAge
	}
	if _, err := dc.Purge(context.Background(), time.Now().Add(-2*maxAge)); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}
