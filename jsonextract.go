package jobscout

import (
	"encoding/json"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// maxJSONDepth bounds the recursive JSON value walk so pathological input
// cannot exhaust the stack. Real job-board payloads nest nowhere near this.
const maxJSONDepth = 100

// urlTokenPattern matches URL-shaped tokens in arbitrary text: absolute
// http(s) URLs, www-prefixed hosts, and rooted paths.
var urlTokenPattern = regexp.MustCompile(`(?:https?://|www\.|/)[\w\-./_~:?#\[\]@!$&'()*+,;=]+`)

// relPathPattern matches JSON-string-literal-shaped relative paths,
// i.e. quoted strings starting with "/".
var relPathPattern = regexp.MustCompile(`"(/[^"]+)"`)

// Ensure JSONExtractor implements LinkExtractor at compile time.
var _ LinkExtractor = (*JSONExtractor)(nil)

// JSONExtractor extracts job URLs from JSON content. If the content parses
// as JSON its value tree is walked recursively for URL-like strings; if it
// does not, URL-shaped tokens are pulled out of the raw text with regular
// expressions. Either way the candidates are resolved against the base URL
// and filtered through the classifier. Malformed input yields no links,
// never an error.
type JSONExtractor struct {
	classifier Classifier
}

// NewJSONExtractor creates a JSONExtractor that filters candidates through
// the given classifier.
func NewJSONExtractor(classifier Classifier) *JSONExtractor {
	return &JSONExtractor{classifier: classifier}
}

// Name returns the extractor's identifier.
func (e *JSONExtractor) Name() string {
	return "json"
}

// ExtractLinks extracts job URLs from JSON or arbitrary text content.
// The error result is always nil; it exists to satisfy LinkExtractor.
func (e *JSONExtractor) ExtractLinks(content string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, nil
	}

	seen := make(map[string]struct{})

	var value any
	if err := json.Unmarshal([]byte(content), &value); err == nil {
		walkJSONValue(value, base, 0, func(u string) {
			if e.classifier.LooksLikeJob(u) {
				seen[u] = struct{}{}
			}
		})
	} else {
		for _, match := range urlTokenPattern.FindAllString(content, -1) {
			if !IsURLLike(match) {
				continue
			}
			if resolved := resolveRef(base, match); resolved != "" && e.classifier.LooksLikeJob(resolved) {
				seen[resolved] = struct{}{}
			}
		}
		for _, match := range relPathPattern.FindAllStringSubmatch(content, -1) {
			if resolved := resolveRef(base, match[1]); resolved != "" && e.classifier.LooksLikeJob(resolved) {
				seen[resolved] = struct{}{}
			}
		}
	}

	links := make([]string, 0, len(seen))
	for u := range seen {
		links = append(links, u)
	}
	sort.Strings(links)
	return links, nil
}

// IsURLLike reports whether a string looks like a URL: an absolute http(s)
// URL, a path-like reference, or a host/path pair containing both a dot and
// a slash.
func IsURLLike(s string) bool {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "/") || strings.HasPrefix(s, "./") || strings.HasPrefix(s, "../") {
		return true
	}
	return strings.Contains(s, ".") && strings.Contains(s, "/") && len(s) > 5
}

// WalkJSONText parses text as JSON and calls visit for every URL-like
// string in the value tree, resolved against base. Parse failures are
// silent: a malformed blob simply contributes nothing.
func WalkJSONText(text string, base *url.URL, visit func(absURL string)) {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return
	}
	walkJSONValue(value, base, 0, visit)
}

// walkJSONValue recursively scans a decoded JSON value for URL-like
// strings, resolving each against base. Depth is bounded by maxJSONDepth.
func walkJSONValue(value any, base *url.URL, depth int, visit func(absURL string)) {
	if depth > maxJSONDepth {
		return
	}
	switch v := value.(type) {
	case map[string]any:
		for _, item := range v {
			walkJSONValue(item, base, depth+1, visit)
		}
	case []any:
		for _, item := range v {
			walkJSONValue(item, base, depth+1, visit)
		}
	case string:
		if IsURLLike(v) {
			if resolved := resolveRef(base, v); resolved != "" {
				visit(resolved)
			}
		}
	}
}

// resolveRef resolves ref against base, returning "" if ref cannot be
// parsed as a URL reference.
func resolveRef(base *url.URL, ref string) string {
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return base.ResolveReference(r).String()
}
