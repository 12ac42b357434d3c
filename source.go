package doxie

import (
	"context"
	"strings"
)

// Defaults for source configuration. Callers that leave the corresponding
// fields zero get these values.
const (
	DefaultMaxPages       = 20
	DefaultConcurrency    = 5
	DefaultMaxFiles       = 200
	DefaultRef            = "HEAD"
	DefaultFrontierFactor = 5
)

// Source produces structured documents from one source kind (a web crawl,
// a repository fetch). Implementations degrade gracefully: per-item
// failures drop the affected item and never abort the whole fetch.
type Source interface {
	Fetch(ctx context.Context) ([]*Document, error)
}

// CrawlConfig describes one web crawl invocation.
type CrawlConfig struct {
	// SeedURL is the starting address. Required; scheme must be http(s).
	SeedURL string

	// MaxPages caps the number of fetched pages. Default: DefaultMaxPages.
	MaxPages int

	// SameHost restricts discovered links to the seed's hostname
	// (case-insensitive equality).
	SameHost bool

	// IncludePatterns and ExcludePatterns are regex filters applied to
	// discovered links. Invalid patterns are ignored (fail-open).
	IncludePatterns []string
	ExcludePatterns []string

	// Concurrency is the fetch worker pool size. Default: DefaultConcurrency.
	Concurrency int

	// FrontierFactor bounds frontier growth: at most
	// MaxPages×FrontierFactor URLs are ever admitted to the visited set,
	// regardless of branching factor. Default: DefaultFrontierFactor.
	// The default has no empirical basis; tune it if crawls terminate
	// early on wide sites.
	FrontierFactor int
}

// Validate returns an error if the configuration cannot start a crawl.
func (c *CrawlConfig) Validate() error {
	if strings.TrimSpace(c.SeedURL) == "" {
		return Errorf(EINVALID, "seed URL required")
	}
	return nil
}

// WithDefaults returns a copy with zero fields replaced by defaults.
func (c CrawlConfig) WithDefaults() CrawlConfig {
	if c.MaxPages <= 0 {
		c.MaxPages = DefaultMaxPages
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.FrontierFactor <= 0 {
		c.FrontierFactor = DefaultFrontierFactor
	}
	return c
}

// RepoConfig describes one repository fetch invocation.
type RepoConfig struct {
	// Owner and Repo identify the repository. Both required.
	Owner string
	Repo  string

	// Ref is a branch, tag, or commit SHA. Default: DefaultRef.
	Ref string

	// IncludeGlobs select files by path. When empty, a default set
	// favoring README and docs/** markdown files is used.
	IncludeGlobs []string

	// MaxFiles caps the number of fetched files (first N in tree order).
	// Default: DefaultMaxFiles.
	MaxFiles int
}

// Validate returns an error if the configuration cannot start a fetch.
func (c *RepoConfig) Validate() error {
	if strings.TrimSpace(c.Owner) == "" {
		return Errorf(EINVALID, "repository owner required")
	}
	if strings.TrimSpace(c.Repo) == "" {
		return Errorf(EINVALID, "repository name required")
	}
	return nil
}

// WithDefaults returns a copy with zero fields replaced by defaults.
func (c RepoConfig) WithDefaults() RepoConfig {
	if c.Ref == "" {
		c.Ref = DefaultRef
	}
	if c.MaxFiles <= 0 {
		c.MaxFiles = DefaultMaxFiles
	}
	return c
}
