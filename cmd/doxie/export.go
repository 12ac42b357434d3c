package main

import (
	"fmt"

	"github.com/fwojciec/doxie"
	"github.com/fwojciec/doxie/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	pages, err := deps.Crawler.Crawl(deps.Ctx, doxie.CrawlConfig{
		SeedURL:     c.URL,
		MaxPages:    c.MaxPages,
		SameHost:    true,
		Concurrency: c.Concurrency,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxie.ErrorMessage(err))
		return err
	}

	writer := fs.NewWriter(c.Out)
	written := 0
	for _, page := range pages {
		markdown, err := deps.Converter.Convert(page.HTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "skipping %s: %s\n", page.URL, doxie.ErrorMessage(err))
			continue
		}
		title := deps.Titles.ExtractTitle(page.HTML)
		if err := writer.Write(page.URL, title, markdown); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", doxie.ErrorMessage(err))
			return err
		}
		written++
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", written, c.Out)
	return nil
}
