package mock

import (
	"context"

	"github.com/fwojciec/doxie"
)

var _ doxie.RepoClient = (*RepoClient)(nil)

// RepoClient is a mock implementation of doxie.RepoClient.
type RepoClient struct {
	ListTreeFn func(ctx context.Context, owner, repo, ref string) ([]doxie.TreeEntry, error)
	FetchRawFn func(ctx context.Context, owner, repo, ref, path string) (string, error)
	BlobURLFn  func(owner, repo, ref, path string) string
}

func (c *RepoClient) ListTree(ctx context.Context, owner, repo, ref string) ([]doxie.TreeEntry, error) {
	return c.ListTreeFn(ctx, owner, repo, ref)
}

func (c *RepoClient) FetchRaw(ctx context.Context, owner, repo, ref, path string) (string, error) {
	return c.FetchRawFn(ctx, owner, repo, ref, path)
}

func (c *RepoClient) BlobURL(owner, repo, ref, path string) string {
	if c.BlobURLFn == nil {
		return ""
	}
	return c.BlobURLFn(owner, repo, ref, path)
}
