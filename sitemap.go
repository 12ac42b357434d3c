package doxie

import (
	"context"
	"regexp"
)

// SitemapService discovers URLs from website sitemaps.
type SitemapService interface {
	// DiscoverURLs finds all URLs from a site's sitemap. It first checks
	// robots.txt for sitemap directives, then falls back to /sitemap.xml.
	// Sitemap indexes are resolved recursively. When baseURL has a
	// non-root path, only URLs under that path prefix are returned.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}

// URLFilter specifies regex patterns for including/excluding URLs.
type URLFilter struct {
	// Include patterns - if set, only URLs matching at least one pattern
	// are included.
	Include []*regexp.Regexp

	// Exclude patterns - URLs matching any pattern are excluded.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// CompileURLFilter compiles pattern strings into a URLFilter.
// Filtering fails open per pattern set: one invalid include pattern
// disables include-filtering entirely rather than turning into "include
// only what the surviving patterns match", and one invalid exclude
// pattern disables exclude-filtering entirely. A bad filter must never
// silently shrink the crawl. Returns nil when neither set remains.
func CompileURLFilter(include, exclude []string) *URLFilter {
	f := &URLFilter{
		Include: compilePatterns(include),
		Exclude: compilePatterns(exclude),
	}
	if len(f.Include) == 0 && len(f.Exclude) == 0 {
		return nil
	}
	return f
}

// compilePatterns compiles a pattern set all-or-nothing: any invalid
// pattern discards the whole set.
func compilePatterns(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil
		}
		res = append(res, re)
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// Match returns true if the URL passes the filter.
// A nil filter passes everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}

	return true
}
