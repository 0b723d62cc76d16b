package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobscout"
	"github.com/fwojciec/jobscout/gemini"
	"github.com/fwojciec/jobscout/goquery"
	jobhttp "github.com/fwojciec/jobscout/http"
	"github.com/fwojciec/jobscout/rod"
	"github.com/fwojciec/jobscout/scrape"
	jobslog "github.com/fwojciec/jobscout/slog"
	"github.com/fwojciec/jobscout/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// DiscoveryService for end-to-end testing.
	DiscoveryService jobscout.DiscoveryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobscout"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobscout --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set JOBSCOUT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.DiscoveryService = sqlite.NewDiscoveryService(m.DB)
	deps.DB = m.DB
	deps.Discoveries = m.DiscoveryService

	// Wire the discovery pipeline based on discover flags
	if cmd == "discover" {
		logger := slog.New(slog.DiscardHandler)
		if cli.Discover.Verbose {
			logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}

		rules := jobscout.MustRuleClassifier(jobscout.DefaultRuleSet())
		var classifier jobscout.Classifier = rules
		if cli.Discover.LLM {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return fmt.Errorf("GEMINI_API_KEY not set")
			}
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			classifier = gemini.NewClassifier(client, rules)
		}

		fetchers := []jobscout.Fetcher{
			jobhttp.NewFetcher(jobhttp.WithTimeout(cli.Discover.Timeout)),
		}
		if !cli.Discover.StaticOnly {
			fetchers = append(fetchers, rod.NewFetcher())
		}
		if cli.Discover.Verbose {
			for i, f := range fetchers {
				fetchers[i] = jobslog.NewLoggingFetcher(f, logger)
			}
		}

		scraper := &scrape.Scraper{
			Fetchers: fetchers,
			Extractors: []jobscout.LinkExtractor{
				goquery.NewHTMLExtractor(classifier),
				jobscout.NewJSONExtractor(classifier),
			},
			Limiter: scrape.NewDomainLimiter(cli.Discover.RPS),
			Logger:  logger,
		}
		defer scraper.Close()

		deps.Scraper = scraper
		deps.Sitemaps = jobslog.NewLoggingSitemapService(jobhttp.NewSitemapService(nil, classifier), logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("JOBSCOUT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "jobscout.db"
	}
	dir := filepath.Join(home, ".jobscout")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "jobscout.db")
}
