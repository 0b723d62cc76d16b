package jobscout

// LinkExtractor pulls candidate job URLs out of a content blob.
// Implementations must tolerate malformed input: a blob that cannot be
// parsed contributes no links, it does not abort extraction.
type LinkExtractor interface {
	// ExtractLinks parses content and returns absolute URLs that pass the
	// extractor's classifier. Relative references are resolved against
	// baseURL. The returned slice contains no duplicates.
	ExtractLinks(content string, baseURL string) ([]string, error)

	// Name returns the extractor's identifier (e.g., "html", "json").
	Name() string
}
