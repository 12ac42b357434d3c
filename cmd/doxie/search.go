package main

import (
	"fmt"

	"github.com/fwojciec/doxie"
	"github.com/fwojciec/doxie/crawl"
	"github.com/fwojciec/doxie/repo"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	source, err := c.source(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxie.ErrorMessage(err))
		return err
	}

	docs, err := source.Fetch(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxie.ErrorMessage(err))
		return err
	}

	hits, err := deps.Searcher.Search(deps.Ctx, docs, c.Query, c.K)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxie.ErrorMessage(err))
		return err
	}

	return writeJSON(deps.Stdout, hits)
}

// source picks the search corpus from the --url or --repo flag.
func (c *SearchCmd) source(deps *Dependencies) (doxie.Source, error) {
	switch {
	case c.URL != "" && c.Repo != "":
		return nil, doxie.Errorf(doxie.EINVALID, "--url and --repo are mutually exclusive")
	case c.URL != "":
		return &crawl.Source{
			Crawler:   deps.Crawler,
			Extractor: deps.HTML,
			Titles:    deps.Titles,
			Config: doxie.CrawlConfig{
				SeedURL:     c.URL,
				MaxPages:    c.MaxPages,
				SameHost:    true,
				Concurrency: c.Concurrency,
			},
		}, nil
	case c.Repo != "":
		owner, name, err := splitRepo(c.Repo)
		if err != nil {
			return nil, err
		}
		return &repo.Source{
			Client:    deps.Repo,
			Extractor: deps.Markdown,
			Config: doxie.RepoConfig{
				Owner:        owner,
				Repo:         name,
				Ref:          c.Ref,
				IncludeGlobs: c.Glob,
				MaxFiles:     c.MaxFiles,
			},
		}, nil
	default:
		return nil, doxie.Errorf(doxie.EINVALID, "one of --url or --repo is required")
	}
}
