package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/doxie"
	main "github.com/fwojciec/doxie/cmd/doxie"
	"github.com/fwojciec/doxie/mock"
)

// testDeps returns Dependencies with buffers and a discarding logger.
func testDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.DiscardHandler),
	}, stdout, stderr
}

func TestLinksCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints page links as JSON", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return `<a href="/a">A</a><a href="/b">B</a>`, nil
			},
		}
		deps.Links = &mock.LinkExtractor{
			ExtractLinksFn: func(html, baseURL string) ([]string, error) {
				return []string{"https://example.com/a", "https://example.com/b"}, nil
			},
		}

		cmd := &main.LinksCmd{URL: "https://example.com"}
		err := cmd.Run(deps)

		require.NoError(t, err)

		var links []string
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &links))
		assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, links)
	})

	t.Run("fetch failure reports to stderr", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", doxie.Errorf(doxie.EUNAVAILABLE, "page unavailable")
			},
		}

		cmd := &main.LinksCmd{URL: "https://example.com"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "page unavailable")
	})
}
