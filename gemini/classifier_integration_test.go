//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"

	"github.com/fwojciec/jobscout"
	"github.com/fwojciec/jobscout/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// Requires GEMINI_API_KEY. Run with:
//
//	go test -tags integration ./gemini/...

func TestClassifier_Consult(t *testing.T) {
	if os.Getenv("GEMINI_API_KEY") == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(context.Background(), nil)
	require.NoError(t, err)

	// Empty rules reject everything, so every verdict comes from the model.
	rules := jobscout.MustRuleClassifier(jobscout.RuleSet{})
	c := gemini.NewClassifier(client, rules)

	assert.True(t, c.LooksLikeJob("https://boards.greenhouse.io/acme/jobs/4021didnotmatch"))
	assert.False(t, c.LooksLikeJob("https://example.com/privacy-policy"))
}
