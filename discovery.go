package jobscout

import (
	"context"
	"time"
)

// Discovery records a single job URL found while scanning a seed page.
type Discovery struct {
	ID           string    `json:"id"`
	SeedURL      string    `json:"seedUrl"`
	URL          string    `json:"url"`
	URLHash      string    `json:"urlHash"`
	DiscoveredAt time.Time `json:"discoveredAt"`
}

// Validate returns an error if the discovery contains invalid fields.
func (d *Discovery) Validate() error {
	if d.SeedURL == "" {
		return Errorf(EINVALID, "discovery seed URL required")
	}
	if d.URL == "" {
		return Errorf(EINVALID, "discovery URL required")
	}
	return nil
}

// DiscoveryFilter represents a filter for FindDiscoveries.
type DiscoveryFilter struct {
	SeedURL *string `json:"seedUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DiscoveryService persists discovered job URLs. The discovery pipeline
// itself is stateless; this service exists for callers (such as the CLI)
// that want a record of past runs.
type DiscoveryService interface {
	// SaveDiscoveries records the URLs discovered for a seed. Saving the
	// same (seed, url) pair twice updates the timestamp instead of
	// creating a duplicate row.
	SaveDiscoveries(ctx context.Context, seedURL string, urls []string) error

	// FindDiscoveries retrieves discoveries matching the filter, most
	// recent first.
	FindDiscoveries(ctx context.Context, filter DiscoveryFilter) ([]*Discovery, error)

	// DeleteDiscoveries removes all discoveries for a seed URL.
	DeleteDiscoveries(ctx context.Context, seedURL string) error
}
