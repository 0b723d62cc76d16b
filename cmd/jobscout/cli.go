package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/jobscout"
	"github.com/fwojciec/jobscout/scrape"
	"github.com/fwojciec/jobscout/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Discoveries jobscout.DiscoveryService
	Sitemaps    jobscout.SitemapService
	Scraper     *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Discover DiscoverCmd `cmd:"" help:"Discover job posting URLs on careers pages"`
	List     ListCmd     `cmd:"" help:"List recorded discoveries"`
	Delete   DeleteCmd   `cmd:"" help:"Delete recorded discoveries for a seed URL"`
	Boards   BoardsCmd   `cmd:"" help:"List recognized job board domains"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URLs        []string      `arg:"" name:"url" help:"Careers page URLs to scan"`
	StaticOnly  bool          `help:"Skip the browser fallback"`
	Sitemap     bool          `help:"Also mine sitemaps referenced by robots.txt"`
	LLM         bool          `name:"llm" help:"Consult Gemini for URLs the rules reject (requires GEMINI_API_KEY)"`
	Save        bool          `short:"s" help:"Record results in the local database"`
	RPS         float64       `name:"rps" default:"1" help:"Max requests per second per domain"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent seed limit"`
	Timeout     time.Duration `default:"30s" help:"Static fetch timeout"`
	Verbose     bool          `short:"v" help:"Log progress to stderr"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Seed   string `help:"Filter by seed URL"`
	Limit  int    `default:"50" help:"Maximum rows to show"`
	Offset int    `help:"Rows to skip"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Seed string `arg:"" help:"Seed URL whose discoveries to delete"`
}

// BoardsCmd is the "boards" subcommand.
type BoardsCmd struct{}
