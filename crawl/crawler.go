// Package crawl provides breadth-first web crawling under resource and
// scope constraints: page caps, frontier growth caps, same-host
// restriction, and regex link filters.
package crawl

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/doxie"
)

// Page is one fetched page: its final URL and raw HTML.
type Page struct {
	URL  string
	HTML string
}

// Crawler performs bounded-concurrency BFS crawls. Fetch failures of any
// kind (non-200, non-HTML, timeout, transport error) are dead ends: the
// page is skipped silently and never retried.
type Crawler struct {
	Fetcher doxie.Fetcher
	Links   doxie.LinkExtractor

	// Limiter, when set, throttles fetches per domain.
	Limiter doxie.DomainLimiter

	// NewFrontier, when set, supplies the crawl queue for each
	// invocation. Defaults to the bloom-backed FIFO frontier.
	NewFrontier func(maxVisited int) doxie.Frontier
}

// Crawl fetches up to cfg.MaxPages pages starting from cfg.SeedURL.
// Workers share a FIFO frontier; each exits when the queue is empty or
// the page cap is reached, and the crawl runs to natural completion.
// Result order is completion order, not exact link distance from the
// seed. No URL appears twice.
func (c *Crawler) Crawl(ctx context.Context, cfg doxie.CrawlConfig) ([]Page, error) {
	return c.CrawlWith(ctx, cfg, nil)
}

// CrawlWith runs a crawl with extra URLs (e.g. from sitemap discovery)
// seeded into the frontier behind the seed URL. Extra URLs still count
// against the frontier bound and pass through the same scope filters.
func (c *Crawler) CrawlWith(ctx context.Context, cfg doxie.CrawlConfig, extra []string) ([]Page, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.WithDefaults()

	seed, err := normalizeSeed(cfg.SeedURL)
	if err != nil {
		return nil, err
	}

	filter := doxie.CompileURLFilter(cfg.IncludePatterns, cfg.ExcludePatterns)

	frontier := c.newFrontier(cfg.MaxPages * cfg.FrontierFactor)
	frontier.Push(seed.String())
	for _, u := range extra {
		if cfg.SameHost && !sameHost(seed, u) {
			continue
		}
		if !filter.Match(u) {
			continue
		}
		frontier.Push(u)
	}

	st := &crawlState{maxPages: cfg.MaxPages}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Concurrency; i++ {
		g.Go(func() error {
			c.worker(gctx, seed, cfg, filter, frontier, st)
			return nil
		})
	}
	// Workers never return errors; per-page failures are swallowed.
	_ = g.Wait()

	return st.snapshot(), nil
}

func (c *Crawler) newFrontier(maxVisited int) doxie.Frontier {
	if c.NewFrontier != nil {
		return c.NewFrontier(maxVisited)
	}
	return NewFrontier(maxVisited)
}

func (c *Crawler) worker(ctx context.Context, seed *url.URL, cfg doxie.CrawlConfig, filter *doxie.URLFilter, frontier doxie.Frontier, st *crawlState) {
	for {
		if ctx.Err() != nil {
			return
		}
		if st.full() {
			return
		}

		current, ok := frontier.Pop()
		if !ok {
			return
		}

		if c.Limiter != nil {
			if u, err := url.Parse(current); err == nil {
				if err := c.Limiter.Wait(ctx, u.Host); err != nil {
					return
				}
			}
		}

		html, err := c.Fetcher.Fetch(ctx, current)
		if err != nil {
			continue
		}

		if !st.append(Page{URL: current, HTML: html}) {
			return
		}

		links, err := c.Links.ExtractLinks(html, current)
		if err != nil {
			continue
		}
		for _, link := range links {
			if cfg.SameHost && !sameHost(seed, link) {
				continue
			}
			if !filter.Match(link) {
				continue
			}
			frontier.Push(link)
		}
	}
}

// crawlState holds the shared results of one crawl invocation.
type crawlState struct {
	mu       sync.Mutex
	pages    []Page
	maxPages int
}

func (s *crawlState) full() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages) >= s.maxPages
}

// append records a page unless the cap has been reached.
// Returns false when the crawl is already full.
func (s *crawlState) append(p Page) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pages) >= s.maxPages {
		return false
	}
	s.pages = append(s.pages, p)
	return true
}

func (s *crawlState) snapshot() []Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pages
}

// normalizeSeed validates the seed URL and strips its fragment.
func normalizeSeed(rawURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, doxie.Errorf(doxie.EINVALID, "invalid seed URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, doxie.Errorf(doxie.EINVALID, "seed URL scheme must be http or https, got %q", u.Scheme)
	}
	u.Fragment = ""
	return u, nil
}

// sameHost reports whether the link's hostname equals the seed's,
// case-insensitively. Ports are excluded from the comparison.
func sameHost(seed *url.URL, link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Hostname(), seed.Hostname())
}
