// Package rod provides a browser-based implementation of jobscout.Fetcher
// using Chrome automation. It renders JavaScript-driven careers pages and
// sniffs JSON payloads from background network traffic while they load.
package rod

import (
	"context"
	"encoding/base64"
	"mime"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jobscout"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single navigation. Cold-starting JS apps can
// be slow, so this is much longer than the static fetcher's timeout.
const DefaultFetchTimeout = 2 * time.Minute

// DefaultAnchorWait bounds the readiness wait for the first anchor element
// to appear after page load. Timing out here is not an error.
const DefaultAnchorWait = 10 * time.Second

// Ensure Fetcher implements jobscout.Fetcher at compile time.
var _ jobscout.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using headless Chrome. A
// response listener is registered before navigation so no background
// traffic is missed; every 2xx JSON response observed while the page lives
// is buffered into the returned Content's side-channel. The buffer is
// per-call, so concurrent fetches on the same Fetcher don't leak captures
// into each other.
//
// The browser is launched lazily on the first Fetch and recycled
// periodically; Close must be called when the Fetcher is no longer needed.
type Fetcher struct {
	manager    *browserManager
	timeout    time.Duration
	anchorWait time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the navigation timeout.
// Defaults to DefaultFetchTimeout (2m) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithAnchorWait sets how long to wait for an anchor element after load.
// Defaults to DefaultAnchorWait (10s) if not specified.
func WithAnchorWait(d time.Duration) Option {
	return func(f *Fetcher) {
		f.anchorWait = d
	}
}

// WithMaxPages sets the number of pages rendered before the browser is
// recycled. Defaults to DefaultMaxPages if not specified.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.manager = newBrowserManager(n)
	}
}

// NewFetcher creates a new browser-based Fetcher. The browser is not
// launched until the first Fetch call.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		manager:    newBrowserManager(DefaultMaxPages),
		timeout:    DefaultFetchTimeout,
		anchorWait: DefaultAnchorWait,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch navigates to the URL and returns the rendered HTML together with
// the JSON payloads captured from background traffic during the page's
// lifetime. Any navigation failure maps to an EUNAVAILABLE error; the page
// is closed on every exit path.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*jobscout.Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, err := f.manager.browserFor()
	if err != nil {
		return nil, jobscout.Errorf(jobscout.EUNAVAILABLE, "starting browser: %v", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, jobscout.Errorf(jobscout.EUNAVAILABLE, "opening page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(f.timeout)

	// The listener must be live before navigation starts or responses
	// fired right after page load can be missed. EachEvent subscribes
	// synchronously; the returned wait loop runs until the page closes.
	buf := newCaptureBuffer()
	wait := page.EachEvent(func(e *proto.NetworkResponseReceived) {
		f.captureResponse(page, e, buf)
	})
	go wait()

	if err := page.Navigate(url); err != nil {
		return nil, jobscout.Errorf(jobscout.EUNAVAILABLE, "navigating to %s: %v", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, jobscout.Errorf(jobscout.EUNAVAILABLE, "loading %s: %v", url, err)
	}

	// Readiness heuristic: give client-side rendering a chance to produce
	// at least one anchor. Timing out is fine; whatever rendered is used.
	_ = rod.Try(func() {
		page.Timeout(f.anchorWait).MustElement("a")
	})

	html, err := page.HTML()
	if err != nil {
		return nil, jobscout.Errorf(jobscout.EUNAVAILABLE, "reading HTML for %s: %v", url, err)
	}

	return &jobscout.Content{Body: html, Captured: buf.Snapshot()}, nil
}

// Close releases the browser. Safe to call multiple times.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// captureResponse buffers the body of a 2xx JSON response. Failures to
// read a body are ignored; a single unreadable response loses only itself.
func (f *Fetcher) captureResponse(page *rod.Page, e *proto.NetworkResponseReceived, buf *captureBuffer) {
	if e.Response == nil {
		return
	}
	if e.Response.Status < 200 || e.Response.Status > 299 {
		return
	}
	if !IsJSONContentType(responseContentType(e.Response)) {
		return
	}

	res, err := proto.NetworkGetResponseBody{RequestID: e.RequestID}.Call(page)
	if err != nil {
		return
	}
	body := res.Body
	if res.Base64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(res.Body)
		if err != nil {
			return
		}
		body = string(decoded)
	}
	buf.Add(body)
}

// responseContentType returns the response's content type, preferring the
// Content-Type header over the sniffed MIME type.
func responseContentType(r *proto.NetworkResponse) string {
	for name, value := range r.Headers {
		if strings.EqualFold(name, "content-type") {
			return value.Str()
		}
	}
	return r.MIMEType
}

// IsJSONContentType reports whether ct names the application/json media
// type, tolerating a charset suffix (e.g. "application/json; charset=utf-8").
func IsJSONContentType(ct string) bool {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mt == "application/json"
}

// captureBuffer accumulates JSON blobs sniffed during one fetch. Identical
// payloads (SPAs often re-request the same endpoint) are stored once,
// keyed by xxhash digest. Safe for concurrent use: the event loop writes
// while the fetch goroutine reads at the end.
type captureBuffer struct {
	mu    sync.Mutex
	seen  map[uint64]struct{}
	blobs []string
}

func newCaptureBuffer() *captureBuffer {
	return &captureBuffer{seen: make(map[uint64]struct{})}
}

// Add appends a blob unless it is empty or already buffered.
func (b *captureBuffer) Add(blob string) {
	if blob == "" {
		return
	}
	h := xxhash.Sum64String(blob)

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.seen[h]; ok {
		return
	}
	b.seen[h] = struct{}{}
	b.blobs = append(b.blobs, blob)
}

// Snapshot returns a copy of the buffered blobs in capture order.
func (b *captureBuffer) Snapshot() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.blobs))
	copy(out, b.blobs)
	return out
}
