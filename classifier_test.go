package jobscout_test

import (
	"testing"

	"github.com/fwojciec/jobscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultClassifier(t *testing.T) *jobscout.RuleClassifier {
	t.Helper()
	c, err := jobscout.NewRuleClassifier(jobscout.DefaultRuleSet())
	require.NoError(t, err)
	return c
}

func TestRuleClassifier_JobPathPatterns(t *testing.T) {
	t.Parallel()

	c := defaultClassifier(t)

	accepted := []string{
		"https://example.com/jobs/123",
		"https://example.com/careers/software-engineer",
		"https://example.com/openings/456",
		"https://example.com/positions/data-scientist",
		"https://example.com/opportunities/789",
		"https://example.com/vacancies/10",
		"https://example.com/hiring/engineer",
		"https://stackoverflow.com/jobs/123",
	}
	for _, u := range accepted {
		assert.True(t, c.LooksLikeJob(u), u)
	}

	rejected := []string{
		"https://example.com/about",
		"https://example.com/contact",
		"https://example.com/blog/post",
		"https://example.com/random",
	}
	for _, u := range rejected {
		assert.False(t, c.LooksLikeJob(u), u)
	}
}

func TestRuleClassifier_Excluded(t *testing.T) {
	t.Parallel()

	c := defaultClassifier(t)

	t.Run("exclude pattern matches are excluded", func(t *testing.T) {
		t.Parallel()

		excluded := []string{
			"https://example.com/about/team",
			"https://jobs.lever.co/acme/about/team",
			"https://example.com/careers/apply#ref",
			"https://example.com/assets/logo.png",
			"https://example.com/login",
		}
		for _, u := range excluded {
			assert.True(t, c.Excluded(u), u)
		}
	})

	t.Run("unparseable URLs are excluded", func(t *testing.T) {
		t.Parallel()

		assert.True(t, c.Excluded("not a url"))
		assert.True(t, c.Excluded("/relative/path"))
	})

	t.Run("unmatched URLs merely fall through", func(t *testing.T) {
		t.Parallel()

		fallThrough := []string{
			"https://example.com/open-roles/42",
			"https://example.com/random",
		}
		for _, u := range fallThrough {
			assert.False(t, c.Excluded(u), u)
			assert.False(t, c.LooksLikeJob(u), u)
		}
	})

	t.Run("accepted URLs are not excluded", func(t *testing.T) {
		t.Parallel()

		assert.False(t, c.Excluded("https://example.com/jobs/123"))
	})
}

func TestRuleClassifier_JobBoardDomains(t *testing.T) {
	t.Parallel()

	c := defaultClassifier(t)

	assert.True(t, c.LooksLikeJob("https://company.lever.co/123"))
	assert.True(t, c.LooksLikeJob("https://boards.greenhouse.io/company/jobs/123"))
	assert.True(t, c.LooksLikeJob("https://jobs.ashbyhq.com/Company/123"))
	assert.True(t, c.LooksLikeJob("https://company.workday.com/roles/123"))

	// www prefix is stripped before matching.
	assert.True(t, c.LooksLikeJob("https://www.lever.co/company/123"))

	// Suffix match respects dot boundaries: notlever.co is not lever.co.
	assert.False(t, c.LooksLikeJob("https://notlever.co/company/123"))
}

func TestRuleClassifier_QueryPatterns(t *testing.T) {
	t.Parallel()

	c := defaultClassifier(t)

	assert.True(t, c.LooksLikeJob("https://example.com/apply?job_id=123"))
	assert.True(t, c.LooksLikeJob("https://example.com/careers?jobid=456"))
	assert.True(t, c.LooksLikeJob("https://example.com/hiring?gh_jid=789"))
	assert.True(t, c.LooksLikeJob("https://example.com/work?position=engineer"))

	assert.False(t, c.LooksLikeJob("https://example.com/page?q=software"))
}

func TestRuleClassifier_ExcludePatterns(t *testing.T) {
	t.Parallel()

	c := defaultClassifier(t)

	rejected := []string{
		"https://example.com/jobs#section",
		"mailto:hr@example.com",
		"https://example.com/resume.pdf",
		"https://example.com/logo.png",
		"https://example.com/style.css",
		"https://example.com/about/team",
		"https://example.com/contact/support",
		"https://example.com/blog/posts",
		"https://example.com/privacy/policy",
		"https://example.com/search?q=test",
		"https://example.com/login",
	}
	for _, u := range rejected {
		assert.False(t, c.LooksLikeJob(u), u)
	}
}

func TestRuleClassifier_ExcludeWinsOverJobBoard(t *testing.T) {
	t.Parallel()

	c := defaultClassifier(t)

	// A job-board URL containing an excluded segment is still rejected:
	// exclusion is checked first and wins.
	assert.False(t, c.LooksLikeJob("https://company.lever.co/about/team"))
	assert.False(t, c.LooksLikeJob("https://jobs.ashbyhq.com/Company/123#apply"))
}

func TestRuleClassifier_CaseInsensitive(t *testing.T) {
	t.Parallel()

	c := defaultClassifier(t)

	assert.True(t, c.LooksLikeJob("https://example.com/JOBS/123"))
	assert.True(t, c.LooksLikeJob("https://example.com/Jobs/123"))
	assert.True(t, c.LooksLikeJob("https://LEVER.CO/company/123"))
	assert.True(t, c.LooksLikeJob("https://example.com/apply?JOB_ID=123"))
}

func TestRuleClassifier_MalformedURLs(t *testing.T) {
	t.Parallel()

	c := defaultClassifier(t)

	rejected := []string{
		"",
		"not-a-url",
		"://missing-scheme",
		"https://",
		"/jobs/123", // no scheme or host
	}
	for _, u := range rejected {
		assert.False(t, c.LooksLikeJob(u), u)
	}
}

func TestRuleClassifier_CustomRules(t *testing.T) {
	t.Parallel()

	c, err := jobscout.NewRuleClassifier(jobscout.RuleSet{
		Excludes:      []string{`/custom-exclude/`},
		JobBoards:     []string{"custom-board.com"},
		JobPatterns:   []string{`/custom-jobs/`},
		QueryPatterns: []string{`custom_job=`},
	})
	require.NoError(t, err)

	assert.True(t, c.LooksLikeJob("https://example.com/custom-jobs/123"))
	assert.False(t, c.LooksLikeJob("https://example.com/jobs/123")) // default pattern not present

	assert.True(t, c.LooksLikeJob("https://custom-board.com/anything"))
	assert.False(t, c.LooksLikeJob("https://lever.co/job/123")) // default board not present

	assert.False(t, c.LooksLikeJob("https://example.com/custom-exclude/page"))
	assert.True(t, c.LooksLikeJob("https://example.com/apply?custom_job=123"))
}

func TestNewRuleClassifier_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := jobscout.NewRuleClassifier(jobscout.RuleSet{
		JobPatterns: []string{`(`},
	})

	require.Error(t, err)
	assert.Equal(t, jobscout.EINVALID, jobscout.ErrorCode(err))
}

func TestRuleClassifier_FilterURLs(t *testing.T) {
	t.Parallel()

	c := defaultClassifier(t)

	got := c.FilterURLs([]string{
		"https://example.com/jobs/1",
		"https://example.com/about",
		"https://example.com/careers/2",
	})

	assert.Equal(t, []string{
		"https://example.com/jobs/1",
		"https://example.com/careers/2",
	}, got)
	assert.Equal(t, 2, c.CountMatches([]string{
		"https://example.com/jobs/1",
		"https://example.com/about",
		"https://example.com/careers/2",
	}))
}
