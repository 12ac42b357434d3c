package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/doxie"
	"github.com/fwojciec/doxie/crawl"
	doxslog "github.com/fwojciec/doxie/slog"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	cfg := doxie.CrawlConfig{
		SeedURL:         c.URL,
		MaxPages:        c.MaxPages,
		SameHost:        c.SameHost,
		IncludePatterns: c.Include,
		ExcludePatterns: c.Exclude,
		Concurrency:     c.Concurrency,
	}

	var seeds []string
	if c.FromSitemap {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", doxie.ErrorMessage(err))
			return err
		}
		seeds = urls
	}

	source := doxslog.NewLoggingSource(&crawl.Source{
		Crawler:   deps.Crawler,
		Extractor: deps.HTML,
		Titles:    deps.Titles,
		Config:    cfg,
		SeedURLs:  seeds,
	}, deps.Logger)

	docs, err := source.Fetch(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxie.ErrorMessage(err))
		return err
	}

	return writeJSON(deps.Stdout, docs)
}

// writeJSON renders v as indented JSON on w.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
