// Package goquery provides an HTML implementation of jobscout.LinkExtractor
// built on the goquery document library.
package goquery

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobscout"
)

// Ensure HTMLExtractor implements jobscout.LinkExtractor at compile time.
var _ jobscout.LinkExtractor = (*HTMLExtractor)(nil)

// HTMLExtractor extracts job URLs from HTML content. It collects hrefs from
// anchor elements and URL-like strings from embedded JSON-LD blocks, then
// filters the union through the classifier. Careers pages commonly embed
// JobPosting objects in <script type="application/ld+json">, so both
// sources matter.
type HTMLExtractor struct {
	classifier jobscout.Classifier
}

// NewHTMLExtractor creates an HTMLExtractor that filters candidates through
// the given classifier.
func NewHTMLExtractor(classifier jobscout.Classifier) *HTMLExtractor {
	return &HTMLExtractor{classifier: classifier}
}

// Name returns the extractor's identifier.
func (e *HTMLExtractor) Name() string {
	return "html"
}

// ExtractLinks parses content as HTML and returns the job URLs found in
// anchors and JSON-LD blocks, resolved against baseURL. Content that won't
// parse yields no links rather than an error; a malformed JSON-LD block is
// skipped without affecting its siblings.
func (e *HTMLExtractor) ExtractLinks(content string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, jobscout.Errorf(jobscout.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, nil
	}

	seen := make(map[string]struct{})
	add := func(u string) {
		if e.classifier.LooksLikeJob(u) {
			seen[u] = struct{}{}
		}
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		add(base.ResolveReference(ref).String())
	})

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		jobscout.WalkJSONText(sel.Text(), base, add)
	})

	links := make([]string, 0, len(seen))
	for u := range seen {
		links = append(links, u)
	}
	sort.Strings(links)
	return links, nil
}
