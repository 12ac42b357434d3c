package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"

	"github.com/fwojciec/doxie"
)

// maxSitemapDepth bounds recursion through nested sitemap indexes.
const maxSitemapDepth = 5

// Ensure SitemapService implements doxie.SitemapService at compile time.
var _ doxie.SitemapService = (*SitemapService)(nil)

// SitemapService discovers URLs from website sitemaps. Sitemap locations
// come from robots.txt directives, falling back to the conventional
// /sitemap.xml path; sitemap indexes are resolved recursively.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs finds all URLs from a site's sitemap. Returns an empty
// slice (not nil) when no sitemap exists. When baseURL has a non-root
// path, only URLs under that path prefix are returned.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, doxie.Errorf(doxie.EINVALID, "invalid base URL: %v", err)
	}

	pathPrefix := base.Path
	if pathPrefix == "/" {
		pathPrefix = ""
	}

	root := *base
	root.Path = ""
	root.RawQuery = ""
	root.Fragment = ""

	sitemaps := s.sitemapLocations(ctx, &root)

	urls := []string{}
	seenURLs := make(map[string]bool)
	seenSitemaps := make(map[string]bool)

	for _, sm := range sitemaps {
		for _, u := range s.collect(ctx, sm, seenSitemaps, 0) {
			if seenURLs[u] {
				continue
			}
			seenURLs[u] = true
			if pathPrefix != "" {
				parsed, err := url.Parse(u)
				if err != nil || !strings.HasPrefix(parsed.Path, pathPrefix) {
					continue
				}
			}
			urls = append(urls, u)
		}
	}

	return urls, nil
}

// sitemapLocations returns candidate sitemap URLs for a site root:
// robots.txt Sitemap directives when present, the conventional path
// otherwise.
func (s *SitemapService) sitemapLocations(ctx context.Context, root *url.URL) []string {
	var locations []string

	body, err := s.fetch(ctx, root.String()+"/robots.txt")
	if err == nil {
		scanner := bufio.NewScanner(strings.NewReader(body))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if len(line) > 8 && strings.EqualFold(line[:8], "sitemap:") {
				if loc := strings.TrimSpace(line[8:]); loc != "" {
					locations = append(locations, loc)
				}
			}
		}
	}

	if len(locations) == 0 {
		locations = append(locations, root.String()+"/sitemap.xml")
	}
	return locations
}

// collect parses one sitemap document, recursing into sitemap indexes.
// Unreachable or unparsable sitemaps yield no URLs rather than errors.
func (s *SitemapService) collect(ctx context.Context, sitemapURL string, seen map[string]bool, depth int) []string {
	if depth > maxSitemapDepth || seen[sitemapURL] {
		return nil
	}
	seen[sitemapURL] = true

	body, err := s.fetch(ctx, sitemapURL)
	if err != nil {
		return nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil
	}

	rootEl := doc.Root()
	if rootEl == nil {
		return nil
	}

	var urls []string
	switch rootEl.Tag {
	case "urlset":
		for _, el := range rootEl.SelectElements("url") {
			if loc := el.SelectElement("loc"); loc != nil {
				if u := strings.TrimSpace(loc.Text()); u != "" {
					urls = append(urls, u)
				}
			}
		}
	case "sitemapindex":
		for _, el := range rootEl.SelectElements("sitemap") {
			if loc := el.SelectElement("loc"); loc != nil {
				if u := strings.TrimSpace(loc.Text()); u != "" {
					urls = append(urls, s.collect(ctx, u, seen, depth+1)...)
				}
			}
		}
	}
	return urls
}

func (s *SitemapService) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", doxie.Errorf(doxie.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
