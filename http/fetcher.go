// Package http provides HTTP-based implementations of the doxie network
// interfaces: the HTML page fetcher, the GitHub repository client, and
// sitemap discovery.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/doxie"
)

// DefaultFetchTimeout is the default timeout for page fetches.
const DefaultFetchTimeout = 20 * time.Second

// userAgent identifies the crawler to origin servers.
const userAgent = "doxie-webdocs-crawler/0.1"

// Ensure Fetcher implements doxie.Fetcher at compile time.
var _ doxie.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML pages over plain HTTP. Redirects are followed by
// the underlying client; only a final 200 response with an HTML content
// type is accepted. Everything else is an EUNAVAILABLE error for the
// crawler to treat as a dead end.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML body of the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", doxie.Errorf(doxie.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", doxie.Errorf(doxie.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", doxie.Errorf(doxie.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	if ct := resp.Header.Get("Content-Type"); !strings.Contains(strings.ToLower(ct), "text/html") {
		return "", doxie.Errorf(doxie.EUNAVAILABLE, "non-HTML content type %q for %s", ct, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", doxie.Errorf(doxie.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. A no-op for the HTTP fetcher since
// http.Client requires no explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
