package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/doxie/bleve"
	"github.com/fwojciec/doxie/crawl"
	"github.com/fwojciec/doxie/goldmark"
	"github.com/fwojciec/doxie/goquery"
	"github.com/fwojciec/doxie/htmltomarkdown"
	doxhttp "github.com/fwojciec/doxie/http"
	doxslog "github.com/fwojciec/doxie/slog"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("doxie"),
		kong.Description("Crawl, search, and export documentation from websites and repositories"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'doxie --help' to see available commands")
	}
	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := doxslog.NewLoggingFetcher(
		doxhttp.NewFetcher(doxhttp.WithTimeout(cli.Timeout)), logger)
	defer fetcher.Close()

	htmlExtractor := goquery.NewExtractor()

	ghOpts := []doxhttp.GitHubOption{}
	if cli.Token != "" {
		ghOpts = append(ghOpts, doxhttp.WithToken(cli.Token))
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,

		Fetcher:   fetcher,
		HTML:      htmlExtractor,
		Markdown:  goldmark.NewExtractor(htmlExtractor),
		Links:     goquery.NewLinks(),
		Titles:    goquery.NewTitles(),
		Sitemaps:  doxslog.NewLoggingSitemapService(doxhttp.NewSitemapService(nil), logger),
		Repo:      doxhttp.NewGitHubClient(ghOpts...),
		Searcher:  doxslog.NewLoggingSearcher(bleve.NewSearcher(), logger),
		Converter: htmltomarkdown.NewConverter(),
	}
	deps.Crawler = &crawl.Crawler{
		Fetcher: fetcher,
		Links:   deps.Links,
		Limiter: crawl.NewDomainLimiter(cli.RPS),
	}

	return kongCtx.Run(deps)
}
