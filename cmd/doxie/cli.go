package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/doxie"
	"github.com/fwojciec/doxie/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   doxie.Fetcher
	HTML      doxie.Extractor
	Markdown  doxie.Extractor
	Links     doxie.LinkExtractor
	Titles    doxie.TitleExtractor
	Sitemaps  doxie.SitemapService
	Repo      doxie.RepoClient
	Searcher  doxie.Searcher
	Converter doxie.Converter
	Crawler   *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Enable debug logging"`
	Timeout time.Duration `short:"t" default:"20s" help:"Fetch timeout per page"`
	RPS     float64       `default:"1" help:"Per-domain request rate limit"`
	Token   string        `env:"GITHUB_TOKEN" help:"GitHub API token"`

	Crawl   CrawlCmd   `cmd:"" help:"Crawl a documentation site into structured documents"`
	Links   LinksCmd   `cmd:"" help:"Extract the links from a single page"`
	Sitemap SitemapCmd `cmd:"" help:"List site pages discovered via sitemap"`
	Repo    RepoCmd    `cmd:"" help:"Fetch documentation files from a GitHub repository"`
	Search  SearchCmd  `cmd:"" help:"Crawl or fetch a source, then search it"`
	Export  ExportCmd  `cmd:"" help:"Crawl a site and export it as markdown files"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL         string   `arg:"" help:"Seed URL"`
	MaxPages    int      `default:"20" help:"Maximum pages to fetch"`
	Concurrency int      `short:"c" default:"5" help:"Concurrent fetch limit"`
	SameHost    bool     `default:"true" negatable:"" help:"Restrict the crawl to the seed host"`
	Include     []string `short:"i" help:"Follow only URLs matching a regex (repeatable)"`
	Exclude     []string `short:"x" help:"Skip URLs matching a regex (repeatable)"`
	FromSitemap bool     `help:"Seed the frontier from the site's sitemap"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	URL      string `arg:"" help:"Site URL"`
	MaxPages int    `default:"20" help:"Maximum pages to list"`
}

// RepoCmd is the "repo" subcommand.
type RepoCmd struct {
	Repo     string   `arg:"" help:"Repository as owner/repo"`
	Ref      string   `default:"HEAD" help:"Branch, tag, or commit SHA"`
	Glob     []string `short:"g" help:"File glob (repeatable; defaults to README and docs markdown)"`
	MaxFiles int      `default:"200" help:"Maximum files to fetch"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query       string   `arg:"" help:"Search query"`
	URL         string   `help:"Crawl this site as the search corpus"`
	Repo        string   `help:"Fetch this owner/repo as the search corpus"`
	K           int      `short:"k" default:"5" help:"Number of hits to return"`
	MaxPages    int      `default:"20" help:"Maximum pages to crawl"`
	MaxFiles    int      `default:"200" help:"Maximum repository files to fetch"`
	Ref         string   `default:"HEAD" help:"Branch, tag, or commit SHA"`
	Glob        []string `short:"g" help:"File glob (repeatable)"`
	Concurrency int      `short:"c" default:"5" help:"Concurrent fetch limit"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	URL         string `arg:"" help:"Seed URL"`
	Out         string `short:"o" required:"" help:"Output directory"`
	MaxPages    int    `default:"20" help:"Maximum pages to fetch"`
	Concurrency int    `short:"c" default:"5" help:"Concurrent fetch limit"`
}
