package doxie

import "context"

// Tree entry types as reported by the repository API.
const (
	TreeEntryBlob = "blob"
	TreeEntryTree = "tree"
)

// TreeEntry is one node of a repository file tree.
type TreeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// RepoClient talks to a GitHub-style repository API.
type RepoClient interface {
	// ListTree returns the full recursive file tree at the given ref.
	ListTree(ctx context.Context, owner, repo, ref string) ([]TreeEntry, error)

	// FetchRaw returns the raw text content of one file.
	FetchRaw(ctx context.Context, owner, repo, ref, path string) (string, error)

	// BlobURL returns the human-viewable link for a file.
	BlobURL(owner, repo, ref, path string) string
}
