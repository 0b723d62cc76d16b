package jobscout

import "context"

// SitemapService discovers job URLs from website sitemaps.
type SitemapService interface {
	// DiscoverURLs finds job-like URLs listed in a site's sitemap.
	// It first checks robots.txt for sitemap directives, then falls back
	// to /sitemap.xml. Sitemap indexes are resolved recursively.
	// Returns an empty slice (not nil) when the site has no sitemap.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
