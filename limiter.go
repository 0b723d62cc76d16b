package jobscout

import "context"

// DomainLimiter throttles outgoing requests per domain so discovery stays
// polite to the sites it visits.
type DomainLimiter interface {
	// Wait blocks until a request to the domain is allowed or the context
	// is canceled.
	Wait(ctx context.Context, domain string) error
}
