package crawl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/doxie"
	"github.com/fwojciec/doxie/crawl"
	"github.com/fwojciec/doxie/goquery"
	"github.com/fwojciec/doxie/mock"
)

func TestSource_Fetch(t *testing.T) {
	t.Parallel()

	site := newSiteFetcher(map[string]string{
		"https://example.com/a": `<h1>Page A</h1><a href="/b">B</a>`,
		"https://example.com/b": `<h1>Page B</h1>`,
	})

	src := &crawl.Source{
		Crawler:   newCrawler(site),
		Extractor: goquery.NewExtractor(),
		Config: doxie.CrawlConfig{
			SeedURL:  "https://example.com/a",
			MaxPages: 10,
			SameHost: true,
		},
	}

	docs, err := src.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 2)
	for _, doc := range docs {
		assert.Equal(t, doxie.SourceWeb, doc.Metadata[doxie.MetaSource])
		assert.NotEmpty(t, doc.Metadata[doxie.MetaSourceURL])
		assert.NotEmpty(t, doc.Metadata[doxie.MetaContentHash])
		assert.Len(t, doc.Sections, 1)
	}
}

func TestSource_Fetch_records_page_titles(t *testing.T) {
	t.Parallel()

	site := newSiteFetcher(map[string]string{
		"https://example.com/a": `<title>Page A</title><p>text</p>`,
	})

	src := &crawl.Source{
		Crawler:   newCrawler(site),
		Extractor: goquery.NewExtractor(),
		Titles:    goquery.NewTitles(),
		Config: doxie.CrawlConfig{
			SeedURL:  "https://example.com/a",
			MaxPages: 1,
			SameHost: true,
		},
	}

	docs, err := src.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Page A", docs[0].Metadata[doxie.MetaTitle])
}

func TestSource_Fetch_drops_pages_that_fail_extraction(t *testing.T) {
	t.Parallel()

	site := newSiteFetcher(map[string]string{
		"https://example.com/a": `<a href="/b">B</a>`,
		"https://example.com/b": `<p>fine</p>`,
	})

	calls := 0
	src := &crawl.Source{
		Crawler: newCrawler(site),
		Extractor: &mock.Extractor{
			ExtractFn: func(markup string, metadata map[string]string) (*doxie.Document, error) {
				calls++
				if calls == 1 {
					return nil, doxie.Errorf(doxie.EINTERNAL, "extraction broke")
				}
				return &doxie.Document{Text: "ok", Metadata: metadata}, nil
			},
		},
		Config: doxie.CrawlConfig{
			SeedURL:     "https://example.com/a",
			MaxPages:    10,
			SameHost:    true,
			Concurrency: 1,
		},
	}

	docs, err := src.Fetch(context.Background())

	require.NoError(t, err)
	assert.Len(t, docs, 1, "extraction failure drops only the affected page")
}

func TestSource_Fetch_propagates_validation_error(t *testing.T) {
	t.Parallel()

	src := &crawl.Source{
		Crawler:   &crawl.Crawler{Fetcher: &mock.Fetcher{}, Links: goquery.NewLinks()},
		Extractor: goquery.NewExtractor(),
		Config:    doxie.CrawlConfig{},
	}

	_, err := src.Fetch(context.Background())
	assert.Equal(t, doxie.EINVALID, doxie.ErrorCode(err))
}

func TestContentHash_is_deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, crawl.ContentHash("<p>same</p>"), crawl.ContentHash("<p>same</p>"))
	assert.NotEqual(t, crawl.ContentHash("<p>one</p>"), crawl.ContentHash("<p>two</p>"))
}
