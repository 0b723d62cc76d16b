package jobscout

import "context"

// Content is the result of a single retrieval attempt. It is ephemeral:
// created per fetch, discarded after extraction.
type Content struct {
	// Body is the retrieved page text (HTML or JSON).
	Body string

	// Captured holds JSON payloads observed in background network traffic
	// while the page rendered. Empty for strategies that don't render.
	Captured []string
}

// Fetcher retrieves page content from URLs. Implementations may use plain
// HTTP or browser automation to handle JavaScript-rendered content.
// A failed fetch returns an error with code EUNAVAILABLE; the caller decides
// whether to continue to another strategy.
type Fetcher interface {
	// Fetch retrieves content from the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Content, error)

	// Close releases any resources held by the fetcher (browser sessions,
	// HTTP clients). Must be called when the Fetcher is no longer needed
	// and must be safe to call more than once.
	Close() error
}
