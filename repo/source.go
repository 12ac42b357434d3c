// Package repo turns a GitHub repository's documentation files into
// structured documents.
package repo

import (
	"context"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/doxie"
)

// DefaultIncludeGlobs select the files fetched when a configuration
// names none: README files and markdown anywhere in the tree.
var DefaultIncludeGlobs = []string{
	"README.md",
	"README.*",
	"docs/**/*.md",
	"docs/**/*.mdx",
	"**/*.md",
	"**/*.mdx",
}

// fetchConcurrency bounds parallel raw-content requests per Fetch call.
const fetchConcurrency = 5

// Ensure Source implements doxie.Source at compile time.
var _ doxie.Source = (*Source)(nil)

// Source fetches documentation files from a repository tree: list the
// tree, select blobs matching the configured globs, fetch the first
// MaxFiles of them, and extract each as Markdown. Files that fail to
// fetch or extract are dropped individually; survivors keep tree order.
type Source struct {
	Client    doxie.RepoClient
	Extractor doxie.Extractor
	Config    doxie.RepoConfig
}

// Fetch returns one document per selected repository file.
func (s *Source) Fetch(ctx context.Context) ([]*doxie.Document, error) {
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}
	cfg := s.Config.WithDefaults()

	entries, err := s.Client.ListTree(ctx, cfg.Owner, cfg.Repo, cfg.Ref)
	if err != nil {
		return nil, err
	}

	paths := SelectPaths(entries, cfg.IncludeGlobs, cfg.MaxFiles)

	docs := make([]*doxie.Document, len(paths))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, path := range paths {
		g.Go(func() error {
			content, err := s.Client.FetchRaw(ctx, cfg.Owner, cfg.Repo, cfg.Ref, path)
			if err != nil {
				// A single unreadable file does not fail the fetch.
				return nil
			}
			doc, err := s.Extractor.Extract(content, map[string]string{
				doxie.MetaSource: doxie.SourceGitHub,
				doxie.MetaOwner:  cfg.Owner,
				doxie.MetaRepo:   cfg.Repo,
				doxie.MetaRef:    cfg.Ref,
				doxie.MetaPath:   path,
				doxie.MetaURL:    s.Client.BlobURL(cfg.Owner, cfg.Repo, cfg.Ref, path),
			})
			if err != nil {
				return nil
			}
			mu.Lock()
			docs[i] = doc
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*doxie.Document, 0, len(docs))
	for _, doc := range docs {
		if doc != nil {
			out = append(out, doc)
		}
	}
	return out, nil
}

// SelectPaths filters tree entries down to blob paths matching any of
// the include globs, capped at maxFiles in tree order. An empty glob
// list falls back to DefaultIncludeGlobs; invalid globs are skipped.
func SelectPaths(entries []doxie.TreeEntry, globs []string, maxFiles int) []string {
	if len(globs) == 0 {
		globs = DefaultIncludeGlobs
	}

	paths := make([]string, 0, maxFiles)
	for _, entry := range entries {
		if entry.Type != doxie.TreeEntryBlob {
			continue
		}
		if !matchAny(globs, entry.Path) {
			continue
		}
		paths = append(paths, entry.Path)
		if len(paths) >= maxFiles {
			break
		}
	}
	return paths
}

func matchAny(globs []string, path string) bool {
	for _, glob := range globs {
		ok, err := doublestar.Match(glob, path)
		if err != nil {
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
