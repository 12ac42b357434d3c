package main_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/doxie"
	main "github.com/fwojciec/doxie/cmd/doxie"
	"github.com/fwojciec/doxie/mock"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("searches a repository corpus", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Repo = &mock.RepoClient{
			ListTreeFn: func(ctx context.Context, owner, repo, ref string) ([]doxie.TreeEntry, error) {
				return []doxie.TreeEntry{{Path: "README.md", Type: doxie.TreeEntryBlob}}, nil
			},
			FetchRawFn: func(ctx context.Context, owner, repo, ref, path string) (string, error) {
				return "# Widgets", nil
			},
		}
		deps.Markdown = &mock.Extractor{
			ExtractFn: func(markup string, metadata map[string]string) (*doxie.Document, error) {
				return &doxie.Document{Text: "Widgets", Metadata: metadata}, nil
			},
		}

		var gotQuery string
		var gotK int
		deps.Searcher = &mock.Searcher{
			SearchFn: func(ctx context.Context, docs []*doxie.Document, query string, k int) ([]doxie.Hit, error) {
				gotQuery, gotK = query, k
				return []doxie.Hit{{Title: "Widgets", Score: 1.5}}, nil
			},
		}

		cmd := &main.SearchCmd{Query: "widgets", Repo: "octocat/hello", K: 5, MaxFiles: 200, Ref: "HEAD"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "widgets", gotQuery)
		assert.Equal(t, 5, gotK)

		var hits []doxie.Hit
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &hits))
		require.Len(t, hits, 1)
		assert.Equal(t, "Widgets", hits[0].Title)
	})

	t.Run("requires a corpus flag", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()

		cmd := &main.SearchCmd{Query: "widgets", K: 5}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, doxie.EINVALID, doxie.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--url or --repo")
	})

	t.Run("corpus flags are mutually exclusive", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps()

		cmd := &main.SearchCmd{Query: "widgets", URL: "https://example.com", Repo: "octocat/hello", K: 5}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, doxie.EINVALID, doxie.ErrorCode(err))
	})
}
