package scrape

import (
	"context"
	"log/slog"

	"github.com/fwojciec/jobscout"
	"github.com/fwojciec/jobscout/goquery"
	"github.com/fwojciec/jobscout/http"
	"github.com/fwojciec/jobscout/rod"
)

// DiscoverDefault discovers job posting URLs from a careers page using the
// default pipeline: a static HTTP fetch first, a rendered browser fetch as
// fallback, with anchor, JSON-LD and background-JSON extraction filtered
// through the default classification rules. The browser is released before
// returning.
//
// For anything beyond one-off discovery build a Scraper directly.
func DiscoverDefault(ctx context.Context, seedURL string, logger *slog.Logger) ([]string, error) {
	classifier := jobscout.MustRuleClassifier(jobscout.DefaultRuleSet())

	s := &Scraper{
		Fetchers: []jobscout.Fetcher{
			http.NewFetcher(),
			rod.NewFetcher(),
		},
		Extractors: []jobscout.LinkExtractor{
			goquery.NewHTMLExtractor(classifier),
			jobscout.NewJSONExtractor(classifier),
		},
		Logger: logger,
	}
	defer s.Close()

	return s.Discover(ctx, seedURL)
}
