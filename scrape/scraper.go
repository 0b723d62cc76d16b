// Package scrape orchestrates job URL discovery. A Scraper runs an ordered
// list of retrieval strategies against a careers page and fans the fetched
// content out to link extractors; the first strategy that yields any job
// URLs wins and later strategies are skipped.
package scrape

import (
	"context"
	"log/slog"
	"net/url"
	"sort"
	"time"

	"github.com/fwojciec/jobscout"
)

// Scraper discovers job posting URLs from a careers page.
//
// Fetchers are tried in order, cheapest first. A fetcher failure is logged
// and the next fetcher is tried; extraction failures on individual
// documents are logged and skipped. The only error Discover returns is
// context cancellation, so a partially broken pipeline still produces
// whatever it can.
type Scraper struct {
	Fetchers    []jobscout.Fetcher
	Extractors  []jobscout.LinkExtractor
	Limiter     jobscout.DomainLimiter // optional
	RetryDelays []time.Duration        // nil means DefaultRetryDelays()
	Logger      *slog.Logger           // optional
}

// Discover fetches the seed URL and returns the discovered job posting
// URLs, deduplicated and sorted lexicographically. The result is empty but
// non-nil when no strategy finds anything.
func (s *Scraper) Discover(ctx context.Context, seedURL string) ([]string, error) {
	logger := s.logger()

	seed, err := url.Parse(seedURL)
	if err != nil || seed.Scheme == "" || seed.Host == "" {
		logger.Warn("invalid seed URL", "url", seedURL)
		return []string{}, nil
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	for _, fetcher := range s.Fetchers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx, seed.Host); err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				logger.Warn("rate limiter failed", "domain", seed.Host, "error", err)
			}
		}

		content, err := FetchWithRetryDelays(ctx, seedURL, fetcher.Fetch, logger, delays)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("fetch failed, trying next strategy", "url", seedURL, "error", err)
			continue
		}

		urls := s.extract(content, seedURL, logger)
		if len(urls) > 0 {
			logger.Info("discovery complete", "url", seedURL, "count", len(urls))
			return urls, nil
		}
		logger.Debug("strategy found no job URLs, trying next", "url", seedURL)
	}

	logger.Info("discovery complete", "url", seedURL, "count", 0)
	return []string{}, nil
}

// extract runs every extractor over the page body and each captured JSON
// payload, returning the deduplicated sorted union.
func (s *Scraper) extract(content *jobscout.Content, seedURL string, logger *slog.Logger) []string {
	documents := make([]string, 0, len(content.Captured)+1)
	documents = append(documents, content.Body)
	documents = append(documents, content.Captured...)

	seen := make(map[string]struct{})
	for _, doc := range documents {
		for _, extractor := range s.Extractors {
			links, err := extractor.ExtractLinks(doc, seedURL)
			if err != nil {
				logger.Warn("extraction failed", "extractor", extractor.Name(), "url", seedURL, "error", err)
				continue
			}
			for _, link := range links {
				seen[link] = struct{}{}
			}
		}
	}

	urls := make([]string, 0, len(seen))
	for u := range seen {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

// Close releases every fetcher. Failures are logged and swallowed; calling
// Close more than once is safe.
func (s *Scraper) Close() {
	logger := s.logger()
	for _, fetcher := range s.Fetchers {
		if err := fetcher.Close(); err != nil {
			logger.Warn("closing fetcher failed", "error", err)
		}
	}
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}
