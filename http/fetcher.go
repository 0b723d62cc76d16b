// Package http provides an HTTP-based implementation of jobscout.Fetcher
// for retrieving careers pages that don't require JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/jobscout"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies the scraper to the origin server.
const DefaultUserAgent = "jobscout/1.0"

// Ensure Fetcher implements jobscout.Fetcher at compile time.
var _ jobscout.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page content using plain HTTP GET requests with
// redirect-following. Unlike rod.Fetcher, this does not execute JavaScript
// and never fills the side-channel buffer. It never falls back on its own;
// the orchestrator decides what to try next when a fetch fails.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the content at the given URL. Any transport failure,
// timeout, or non-2xx status returns an EUNAVAILABLE error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*jobscout.Content, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, jobscout.Errorf(jobscout.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, jobscout.Errorf(jobscout.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, jobscout.Errorf(jobscout.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, jobscout.Errorf(jobscout.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return &jobscout.Content{Body: string(body)}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
