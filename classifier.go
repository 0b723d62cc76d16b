package jobscout

import (
	"net/url"
	"regexp"
	"strings"
)

// Classifier decides whether a URL looks like a job posting.
// Implementations must be deterministic and must never fail: a URL that
// cannot be parsed is a non-match, not an error.
type Classifier interface {
	LooksLikeJob(url string) bool
}

// RuleSet configures a RuleClassifier. The lists are regular expression
// patterns except JobBoards, which holds bare hostnames. The zero value is
// not useful; start from DefaultRuleSet and override as needed.
type RuleSet struct {
	// Excludes are checked first against the full URL and short-circuit
	// to a reject. Exclusion wins even over a job-board hostname.
	Excludes []string

	// JobBoards are hostnames of third-party hiring platforms. A URL whose
	// host equals, or is a subdomain of, one of these is accepted.
	JobBoards []string

	// JobPatterns are matched against the URL path.
	JobPatterns []string

	// QueryPatterns are matched against the URL query string.
	QueryPatterns []string
}

// DefaultRuleSet returns the standard classification rules.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Excludes: []string{
			`#`,           // fragment links
			`javascript:`, // script pseudo-links
			`mailto:`,     // email links
			`\.(pdf|doc|docx|jpg|jpeg|png|gif|svg|css|js|ico)$`, // static assets
			`/(about|contact|press|privacy|terms|help|blog|news|media)(/|$)`,
			`/feed/`,    // RSS feeds
			`/search\?`, // search pages
			`/login`,    // login pages
		},
		JobBoards: []string{
			"ashbyhq.com",
			"lever.co",
			"greenhouse.io",
			"workday.com",
			"jobvite.com",
			"smartrecruiters.com",
			"bamboohr.com",
			"workable.com",
			"applytojob.com",
			"recruitee.com",
			"teamtailor.com",
			"icims.com",
			"taleo.net",
			"successfactors.com",
		},
		JobPatterns: []string{
			`/jobs?/`,
			`/careers?/`,
			`/openings?/`,
			`/positions?/`,
			`/opportunities?/`,
			`/vacancies?/`,
			`/employment/`,
			`/hiring/`,
			`/work-with-us/`,
			`/join-us/`,
			`/job-search/`,
			`/apply/`,
		},
		QueryPatterns: []string{
			`job_id=`,
			`jobid=`,
			`gh_jid=`,      // Greenhouse
			`lever-job=`,   // Lever tracking links
			`workday-job=`, // Workday tracking links
			`position=`,
			`req_id=`,
			`posting=`,
		},
	}
}

// Ensure RuleClassifier implements Classifier at compile time.
var _ Classifier = (*RuleClassifier)(nil)

// RuleClassifier classifies URLs using ordered pattern groups: excludes
// first (reject), known job-board hostnames second (accept), job path and
// query patterns last (accept). It is immutable after construction and safe
// for concurrent use.
type RuleClassifier struct {
	excludes []*regexp.Regexp
	boards   []string
	paths    []*regexp.Regexp
	queries  []*regexp.Regexp
}

// NewRuleClassifier compiles the rule set into a classifier. All patterns
// are matched case-insensitively.
func NewRuleClassifier(rules RuleSet) (*RuleClassifier, error) {
	compile := func(patterns []string) ([]*regexp.Regexp, error) {
		res := make([]*regexp.Regexp, 0, len(patterns))
		for _, p := range patterns {
			re, err := regexp.Compile(`(?i)` + p)
			if err != nil {
				return nil, Errorf(EINVALID, "invalid classifier pattern %q: %v", p, err)
			}
			res = append(res, re)
		}
		return res, nil
	}

	excludes, err := compile(rules.Excludes)
	if err != nil {
		return nil, err
	}
	paths, err := compile(rules.JobPatterns)
	if err != nil {
		return nil, err
	}
	queries, err := compile(rules.QueryPatterns)
	if err != nil {
		return nil, err
	}

	boards := make([]string, 0, len(rules.JobBoards))
	for _, b := range rules.JobBoards {
		boards = append(boards, strings.ToLower(b))
	}

	return &RuleClassifier{
		excludes: excludes,
		boards:   boards,
		paths:    paths,
		queries:  queries,
	}, nil
}

// MustRuleClassifier is like NewRuleClassifier but panics on invalid
// patterns. Intended for use with DefaultRuleSet and other literal rule
// sets known to compile.
func MustRuleClassifier(rules RuleSet) *RuleClassifier {
	c, err := NewRuleClassifier(rules)
	if err != nil {
		panic(err)
	}
	return c
}

// LooksLikeJob reports whether the URL looks like a job posting.
// Checks run in strict order, first match wins: exclude patterns reject,
// job-board hostnames accept, path and query patterns accept. A URL
// without a scheme or host never matches.
func (c *RuleClassifier) LooksLikeJob(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme == "" || u.Host == "" {
		return false
	}

	// Exclusion is checked before the job-board test on purpose: a
	// job-board URL containing an excluded path segment is still rejected.
	for _, re := range c.excludes {
		if re.MatchString(rawURL) {
			return false
		}
	}

	if c.isJobBoard(u.Hostname()) {
		return true
	}

	for _, re := range c.paths {
		if re.MatchString(u.Path) {
			return true
		}
	}

	for _, re := range c.queries {
		if re.MatchString(u.RawQuery) {
			return true
		}
	}

	return false
}

// Excluded reports whether the URL is ruled out outright: it matches an
// exclude pattern or cannot be parsed into a scheme and host. A URL that is
// merely unmatched (rejected by falling through every accept rule) is not
// excluded.
func (c *RuleClassifier) Excluded(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return true
	}
	if u.Scheme == "" || u.Host == "" {
		return true
	}

	for _, re := range c.excludes {
		if re.MatchString(rawURL) {
			return true
		}
	}
	return false
}

// isJobBoard reports whether host is a configured job-board domain or a
// subdomain of one (dot-boundary suffix match).
func (c *RuleClassifier) isJobBoard(host string) bool {
	host = strings.ToLower(host)
	host = strings.TrimPrefix(host, "www.")

	for _, board := range c.boards {
		if host == board || strings.HasSuffix(host, "."+board) {
			return true
		}
	}
	return false
}

// FilterURLs returns the subset of urls that look like job postings,
// preserving input order.
func (c *RuleClassifier) FilterURLs(urls []string) []string {
	var out []string
	for _, u := range urls {
		if c.LooksLikeJob(u) {
			out = append(out, u)
		}
	}
	return out
}

// CountMatches returns how many of the given URLs look like job postings.
func (c *RuleClassifier) CountMatches(urls []string) int {
	n := 0
	for _, u := range urls {
		if c.LooksLikeJob(u) {
			n++
		}
	}
	return n
}
