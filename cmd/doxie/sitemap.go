package main

import (
	"fmt"

	"github.com/fwojciec/doxie"
)

// sitemapEntry is one row of the sitemap listing.
type sitemapEntry struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxie.ErrorMessage(err))
		return err
	}
	if len(urls) > c.MaxPages {
		urls = urls[:c.MaxPages]
	}

	entries := make([]sitemapEntry, 0, len(urls))
	for _, u := range urls {
		// The URL stands in as the title for pages that fail to fetch
		// or carry no title of their own.
		entry := sitemapEntry{URL: u, Title: u}
		if html, err := deps.Fetcher.Fetch(deps.Ctx, u); err == nil {
			if title := deps.Titles.ExtractTitle(html); title != "" {
				entry.Title = title
			}
		}
		entries = append(entries, entry)
	}

	return writeJSON(deps.Stdout, entries)
}
