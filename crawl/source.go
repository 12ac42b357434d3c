package crawl

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/fwojciec/doxie"
)

// Ensure Source implements doxie.Source at compile time.
var _ doxie.Source = (*Source)(nil)

// Source adapts a Crawler into a doxie.Source: crawl, then extract each
// page into a structured document. Pages that fail extraction are dropped
// individually.
type Source struct {
	Crawler   *Crawler
	Extractor doxie.Extractor
	Config    doxie.CrawlConfig

	// Titles, when set, records each page's title in document metadata.
	Titles doxie.TitleExtractor

	// SeedURLs are extra frontier entries, typically from sitemap
	// discovery. Optional.
	SeedURLs []string
}

// Fetch crawls the configured site and returns one document per fetched
// page, tagged with its source URL and a content hash.
func (s *Source) Fetch(ctx context.Context) ([]*doxie.Document, error) {
	pages, err := s.Crawler.CrawlWith(ctx, s.Config, s.SeedURLs)
	if err != nil {
		return nil, err
	}

	docs := make([]*doxie.Document, 0, len(pages))
	for _, p := range pages {
		metadata := map[string]string{
			doxie.MetaSourceURL:   p.URL,
			doxie.MetaSource:      doxie.SourceWeb,
			doxie.MetaContentHash: ContentHash(p.HTML),
		}
		if s.Titles != nil {
			if title := s.Titles.ExtractTitle(p.HTML); title != "" {
				metadata[doxie.MetaTitle] = title
			}
		}
		doc, err := s.Extractor.Extract(p.HTML, metadata)
		if err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// ContentHash computes an xxhash digest of page content. Recorded in
// document metadata so downstream consumers can detect unchanged pages
// across separate invocations.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
