package jobscout_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/jobscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// acceptAll is a classifier that accepts every URL.
type acceptAll struct{}

func (acceptAll) LooksLikeJob(string) bool { return true }

// rejectAll is a classifier that rejects every URL.
type rejectAll struct{}

func (rejectAll) LooksLikeJob(string) bool { return false }

func TestJSONExtractor_ExtractFromJSON(t *testing.T) {
	t.Parallel()

	e := jobscout.NewJSONExtractor(defaultClassifier(t))

	content := `{
		"jobs": [
			{"url": "https://example.com/jobs/123"},
			{"url": "/careers/456"}
		]
	}`

	links, err := e.ExtractLinks(content, "https://example.com")

	require.NoError(t, err)
	assert.Contains(t, links, "https://example.com/jobs/123")
	assert.Contains(t, links, "https://example.com/careers/456")
}

func TestJSONExtractor_NestedJSON(t *testing.T) {
	t.Parallel()

	e := jobscout.NewJSONExtractor(defaultClassifier(t))

	content := `{
		"data": {
			"company": {
				"careers": {
					"openings": [
						{"url": "/jobs/123"},
						{"url": "/jobs/456"}
					]
				}
			}
		}
	}`

	links, err := e.ExtractLinks(content, "https://example.com")

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"https://example.com/jobs/123",
		"https://example.com/jobs/456",
	}, links)
}

func TestJSONExtractor_TextFallback(t *testing.T) {
	t.Parallel()

	e := jobscout.NewJSONExtractor(defaultClassifier(t))

	content := `
	Check out our jobs at /jobs/123 and /careers/456
	Visit https://example.com/positions/789 for more info
	`

	links, err := e.ExtractLinks(content, "https://example.com")

	require.NoError(t, err)
	assert.Contains(t, links, "https://example.com/jobs/123")
	assert.Contains(t, links, "https://example.com/careers/456")
	assert.Contains(t, links, "https://example.com/positions/789")
}

func TestJSONExtractor_QuotedRelativePaths(t *testing.T) {
	t.Parallel()

	e := jobscout.NewJSONExtractor(defaultClassifier(t))

	// Not valid JSON (trailing comma) so the regex fallback handles it,
	// including the quoted relative path.
	content := `{"jobUrl": "/openings/42",}`

	links, err := e.ExtractLinks(content, "https://example.com")

	require.NoError(t, err)
	assert.Contains(t, links, "https://example.com/openings/42")
}

func TestJSONExtractor_ClassifierApplied(t *testing.T) {
	t.Parallel()

	e := jobscout.NewJSONExtractor(rejectAll{})

	links, err := e.ExtractLinks(`{"url": "https://example.com/jobs/123"}`, "https://example.com")

	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestJSONExtractor_MalformedInputNeverErrors(t *testing.T) {
	t.Parallel()

	e := jobscout.NewJSONExtractor(defaultClassifier(t))

	for _, content := range []string{
		"",
		"{{{{",
		`{"unterminated": `,
		strings.Repeat("[", 10000),
	} {
		_, err := e.ExtractLinks(content, "https://example.com")
		require.NoError(t, err)
	}
}

func TestJSONExtractor_DeepNestingBounded(t *testing.T) {
	t.Parallel()

	e := jobscout.NewJSONExtractor(acceptAll{})

	// Build a deeply nested array holding one URL at the bottom. The walk
	// is depth-bounded, so the URL is simply not reached; it must not panic.
	depth := 500
	content := strings.Repeat("[", depth) + `"https://example.com/jobs/1"` + strings.Repeat("]", depth)
	require.True(t, json.Valid([]byte(content)))

	links, err := e.ExtractLinks(content, "https://example.com")

	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestJSONExtractor_Deduplicates(t *testing.T) {
	t.Parallel()

	e := jobscout.NewJSONExtractor(defaultClassifier(t))

	content := `["/jobs/1", "/jobs/1", "https://example.com/jobs/1"]`

	links, err := e.ExtractLinks(content, "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/jobs/1"}, links)
}

func TestIsURLLike(t *testing.T) {
	t.Parallel()

	assert.True(t, jobscout.IsURLLike("https://example.com"))
	assert.True(t, jobscout.IsURLLike("http://example.com"))
	assert.True(t, jobscout.IsURLLike("/jobs/123"))
	assert.True(t, jobscout.IsURLLike("./jobs"))
	assert.True(t, jobscout.IsURLLike("../careers"))
	assert.True(t, jobscout.IsURLLike("example.com/jobs"))

	assert.False(t, jobscout.IsURLLike("hello"))
	assert.False(t, jobscout.IsURLLike("a.b"))
	assert.False(t, jobscout.IsURLLike("no slash here"))
}
