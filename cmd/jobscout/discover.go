package main

import (
	"fmt"
	"sort"

	"github.com/fwojciec/jobscout"
	"golang.org/x/sync/errgroup"
)

// Run executes the discover command. Seeds are scanned concurrently but
// results print in argument order.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	results := make([][]string, len(c.URLs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, seed := range c.URLs {
		g.Go(func() error {
			urls, err := deps.Scraper.Discover(ctx, seed)
			if err != nil {
				return err
			}

			if c.Sitemap {
				more, err := deps.Sitemaps.DiscoverURLs(ctx, seed)
				if err != nil {
					fmt.Fprintf(deps.Stderr, "warning: sitemap discovery failed for %s: %s\n", seed, jobscout.ErrorMessage(err))
				} else {
					urls = mergeURLs(urls, more)
				}
			}

			results[i] = urls
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, seed := range c.URLs {
		if len(c.URLs) > 1 {
			fmt.Fprintf(deps.Stdout, "# %s (%d)\n", seed, len(results[i]))
		}
		for _, u := range results[i] {
			fmt.Fprintln(deps.Stdout, u)
		}

		if c.Save {
			if err := deps.Discoveries.SaveDiscoveries(deps.Ctx, seed, results[i]); err != nil {
				return fmt.Errorf("failed to save discoveries for %s: %w", seed, err)
			}
		}
	}

	return nil
}

// mergeURLs combines two URL lists into a sorted deduplicated slice.
func mergeURLs(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, u := range a {
		seen[u] = struct{}{}
	}
	for _, u := range b {
		seen[u] = struct{}{}
	}
	merged := make([]string, 0, len(seen))
	for u := range seen {
		merged = append(merged, u)
	}
	sort.Strings(merged)
	return merged
}
