// Package gemini provides an LLM-assisted URL classifier using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/jobscout"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// DefaultConsultTimeout bounds a single model call.
const DefaultConsultTimeout = 15 * time.Second

// Ensure Classifier implements jobscout.Classifier at compile time.
var _ jobscout.Classifier = (*Classifier)(nil)

// Excluder is implemented by rule classifiers that can tell an outright
// exclusion apart from a plain non-match. Excluded URLs are never sent to
// the model.
type Excluder interface {
	Excluded(url string) bool
}

// RuleClassifier exclusions must be visible here so the model cannot
// overrule them.
var _ Excluder = (*jobscout.RuleClassifier)(nil)

// Classifier augments a rule-based classifier with a Gemini consult. Rules
// decide first; only URLs the rules reject by falling through every accept
// rule are sent to the model, and the verdict is memoized so each URL costs
// at most one call. URLs the rules exclude outright stay rejected without a
// consult. Model failures fall back to the rule decision, so a missing API
// key or a network outage never breaks discovery.
type Classifier struct {
	client  *genai.Client
	rules   jobscout.Classifier
	timeout time.Duration

	// consultFn is nil when no model is available.
	consultFn func(ctx context.Context, url string) (bool, error)

	mu   sync.Mutex
	memo map[string]bool
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithConsultTimeout sets the timeout for a single model call.
// Defaults to DefaultConsultTimeout (15s) if not specified.
func WithConsultTimeout(d time.Duration) Option {
	return func(c *Classifier) {
		c.timeout = d
	}
}

// NewClassifier creates a Classifier backed by the given rules. A nil
// client disables the model consult, leaving rule decisions untouched.
func NewClassifier(client *genai.Client, rules jobscout.Classifier, opts ...Option) *Classifier {
	c := &Classifier{
		client:  client,
		rules:   rules,
		timeout: DefaultConsultTimeout,
		memo:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	if client != nil {
		c.consultFn = c.consult
	}
	return c
}

// LooksLikeJob reports whether the URL looks like a job posting.
func (c *Classifier) LooksLikeJob(url string) bool {
	if c.rules.LooksLikeJob(url) {
		return true
	}
	if ex, ok := c.rules.(Excluder); ok && ex.Excluded(url) {
		return false
	}
	if c.consultFn == nil {
		return false
	}

	c.mu.Lock()
	verdict, ok := c.memo[url]
	c.mu.Unlock()
	if ok {
		return verdict
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	verdict, err := c.consultFn(ctx, url)
	if err != nil {
		return false
	}

	c.mu.Lock()
	c.memo[url] = verdict
	c.mu.Unlock()

	return verdict
}

// consult asks the model for a YES/NO verdict on a single URL.
func (c *Classifier) consult(ctx context.Context, url string) (bool, error) {
	result, err := c.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(url)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return false, err
	}
	if result == nil {
		return false, jobscout.Errorf(jobscout.EINTERNAL, "gemini returned nil result")
	}

	answer := strings.ToUpper(strings.TrimSpace(result.Text()))
	return strings.HasPrefix(answer, "YES"), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You classify URLs found on company careers pages. Answer YES if the URL points to an individual job posting or a job application page, NO otherwise. Answer with a single word.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt for a single URL verdict.
func BuildUserPrompt(url string) string {
	return fmt.Sprintf("URL: %s", url)
}
