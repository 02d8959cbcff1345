package loader

import (
	"context"
	"crypto/tls"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/digitalbazaar/jsonld-cli/internal/config"
	"github.com/digitalbazaar/jsonld-cli/internal/model"
)

// acceptHeader is sent with every fetch. JSON-LD is preferred, plain JSON
// accepted, HTML tolerated for primary inputs that embed JSON-LD scripts.
const acceptHeader = "application/ld+json, application/json;q=0.9, text/html;q=0.5, */*;q=0.1"

// linkContextRel is the link relation a server uses to attach a context
// to a plain JSON response.
const linkContextRel = "http://www.w3.org/ns/json-ld#context"

// Fetcher performs HTTP fetches with the configured limits. It knows
// nothing about the allow-list; policy belongs to PolicyLoader.
type Fetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

// NewFetcher builds a Fetcher from the configuration. The client caps
// redirect chains and, when cfg.Insecure is set, skips TLS certificate
// verification.
func NewFetcher(cfg *config.Config) *Fetcher {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // --insecure is an explicit user choice
	}

	max := cfg.MaxBodySize
	if max == 0 {
		max = config.DefaultMaxBodySize
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = config.DefaultTimeout
	}

	return &Fetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= config.DefaultMaxRedirects {
					return errors.Errorf("stopped after %d redirects", config.DefaultMaxRedirects)
				}
				return nil
			},
		},
		userAgent:   cfg.UserAgent,
		maxBodySize: max,
	}
}

// Fetch retrieves rawURL and returns the response as a RemoteResource.
// The resource's URL is the final URL after redirects, its ContentType is
// the bare media type, and ContextURL is set when the server attached a
// JSON-LD context via Link header to a plain JSON response.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*model.RemoteResource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid URL %s", rawURL)
	}
	req.Header.Set("Accept", acceptHeader)
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", rawURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("failed to fetch %s: HTTP %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response from %s", rawURL)
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, errors.Wrapf(ErrBodyTooLarge, "%s (limit %d bytes)", rawURL, f.maxBodySize)
	}

	mediaType := ""
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			mediaType = mt
		}
	}

	res := &model.RemoteResource{
		URL:         resp.Request.URL.String(),
		ContentType: mediaType,
		Body:        body,
		FetchedAt:   time.Now(),
	}

	// A Link context applies only to plain JSON responses; a JSON-LD
	// response carries its context inline and the header is ignored.
	if mediaType != "application/ld+json" {
		res.ContextURL = linkContext(resp.Header.Values("Link"))
	}

	return res, nil
}

// linkContext extracts the first Link header target with the JSON-LD
// context relation. Returns empty when none is present.
func linkContext(headers []string) string {
	for _, header := range headers {
		for _, link := range strings.Split(header, ",") {
			parts := strings.Split(link, ";")
			if len(parts) < 2 {
				continue
			}
			target := strings.TrimSpace(parts[0])
			if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
				continue
			}
			for _, param := range parts[1:] {
				key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
				if !ok || !strings.EqualFold(strings.TrimSpace(key), "rel") {
					continue
				}
				if strings.Trim(strings.TrimSpace(value), `"`) == linkContextRel {
					return strings.Trim(target, "<>")
				}
			}
		}
	}
	return ""
}
