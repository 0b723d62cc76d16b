package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jobscout"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ jobscout.DiscoveryService = (*DiscoveryService)(nil)

// DiscoveryService implements jobscout.DiscoveryService using SQLite.
type DiscoveryService struct {
	db *DB
}

// NewDiscoveryService creates a new DiscoveryService.
func NewDiscoveryService(db *DB) *DiscoveryService {
	return &DiscoveryService{db: db}
}

// hashURL computes xxHash of a URL and returns it as a hex string.
func hashURL(url string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(url))
	return hex.EncodeToString(b)
}

// SaveDiscoveries records the URLs discovered for a seed. Re-discovering a
// URL for the same seed refreshes its timestamp instead of creating a
// duplicate row.
func (s *DiscoveryService) SaveDiscoveries(ctx context.Context, seedURL string, urls []string) error {
	if seedURL == "" {
		return jobscout.Errorf(jobscout.EINVALID, "seed URL required")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, u := range urls {
		d := &jobscout.Discovery{SeedURL: seedURL, URL: u}
		if err := d.Validate(); err != nil {
			return err
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO discoveries (id, seed_url, url, url_hash, discovered_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (seed_url, url) DO UPDATE SET discovered_at = excluded.discovered_at
		`, uuid.New().String(), seedURL, u, hashURL(u), now)
		if err != nil {
			return err
		}
	}

	return nil
}

// FindDiscoveries retrieves discoveries matching the filter, most recent
// first and alphabetical within the same timestamp.
func (s *DiscoveryService) FindDiscoveries(ctx context.Context, filter jobscout.DiscoveryFilter) ([]*jobscout.Discovery, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, seed_url, url, url_hash, discovered_at FROM discoveries WHERE 1=1")

	if filter.SeedURL != nil {
		query.WriteString(" AND seed_url = ?")
		args = append(args, *filter.SeedURL)
	}

	query.WriteString(" ORDER BY discovered_at DESC, url ASC")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	discoveries := []*jobscout.Discovery{}
	for rows.Next() {
		var d jobscout.Discovery
		var discoveredAt string
		if err := rows.Scan(&d.ID, &d.SeedURL, &d.URL, &d.URLHash, &discoveredAt); err != nil {
			return nil, err
		}
		d.DiscoveredAt, err = scanTime(discoveredAt)
		if err != nil {
			return nil, err
		}
		discoveries = append(discoveries, &d)
	}

	return discoveries, rows.Err()
}

// scanTime parses a discovered_at column value. Timestamps are stored as
// RFC3339 strings.
func scanTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse discovered_at: %w", err)
	}
	return t, nil
}

// DeleteDiscoveries removes all discoveries recorded for a seed.
func (s *DiscoveryService) DeleteDiscoveries(ctx context.Context, seedURL string) error {
	if seedURL == "" {
		return jobscout.Errorf(jobscout.EINVALID, "seed URL required")
	}

	_, err := s.db.ExecContext(ctx, "DELETE FROM discoveries WHERE seed_url = ?", seedURL)
	return err
}
