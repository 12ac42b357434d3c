package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/doxie"
)

// DefaultGitHubTimeout is the default timeout for GitHub API calls.
const DefaultGitHubTimeout = 30 * time.Second

// Ensure GitHubClient implements doxie.RepoClient at compile time.
var _ doxie.RepoClient = (*GitHubClient)(nil)

// GitHubClient talks to the GitHub REST API v3 and the raw content host.
// A token is optional; without one, requests run against the anonymous
// rate limit.
type GitHubClient struct {
	apiBaseURL string
	webBaseURL string
	rawBaseURL string
	token      string
	client     *http.Client
}

// GitHubOption configures a GitHubClient.
type GitHubOption func(*GitHubClient)

// WithToken sets the bearer token used for API and raw content requests.
func WithToken(token string) GitHubOption {
	return func(c *GitHubClient) {
		c.token = token
	}
}

// WithAPIBaseURL overrides the API base URL (e.g. for GitHub Enterprise
// or tests).
func WithAPIBaseURL(u string) GitHubOption {
	return func(c *GitHubClient) {
		c.apiBaseURL = strings.TrimSuffix(u, "/")
	}
}

// WithWebBaseURL overrides the base URL used to build human-viewable
// blob links.
func WithWebBaseURL(u string) GitHubOption {
	return func(c *GitHubClient) {
		c.webBaseURL = strings.TrimSuffix(u, "/")
	}
}

// WithRawBaseURL overrides the raw content base URL.
func WithRawBaseURL(u string) GitHubOption {
	return func(c *GitHubClient) {
		c.rawBaseURL = strings.TrimSuffix(u, "/")
	}
}

// WithGitHubTimeout sets the timeout for requests.
func WithGitHubTimeout(d time.Duration) GitHubOption {
	return func(c *GitHubClient) {
		c.client.Timeout = d
	}
}

// NewGitHubClient creates a client against the public GitHub endpoints.
func NewGitHubClient(opts ...GitHubOption) *GitHubClient {
	c := &GitHubClient{
		apiBaseURL: "https://api.github.com",
		webBaseURL: "https://github.com",
		rawBaseURL: "https://raw.githubusercontent.com",
		client:     &http.Client{Timeout: DefaultGitHubTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListTree returns the full recursive file tree at the given ref using
// the git/trees endpoint.
func (c *GitHubClient) ListTree(ctx context.Context, owner, repo, ref string) ([]doxie.TreeEntry, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/git/trees/%s?recursive=1", c.apiBaseURL, owner, repo, ref)

	body, err := c.get(ctx, url, "application/vnd.github+json")
	if err != nil {
		return nil, err
	}

	var payload struct {
		Tree []doxie.TreeEntry `json:"tree"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, doxie.Errorf(doxie.EINTERNAL, "decode tree response: %v", err)
	}
	return payload.Tree, nil
}

// FetchRaw returns the raw text content of one file via the raw content
// host, which serves file bodies directly.
func (c *GitHubClient) FetchRaw(ctx context.Context, owner, repo, ref, path string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s/%s/%s", c.rawBaseURL, owner, repo, ref, strings.TrimPrefix(path, "/"))

	body, err := c.get(ctx, url, "")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// BlobURL returns the human-viewable link for a file.
func (c *GitHubClient) BlobURL(owner, repo, ref, path string) string {
	return fmt.Sprintf("%s/%s/%s/blob/%s/%s", c.webBaseURL, owner, repo, ref, strings.TrimPrefix(path, "/"))
}

func (c *GitHubClient) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, doxie.Errorf(doxie.EINVALID, "invalid URL %q: %v", url, err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, doxie.Errorf(doxie.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, doxie.Errorf(doxie.ENOTFOUND, "HTTP 404 for %s", url)
	case resp.StatusCode != http.StatusOK:
		return nil, doxie.Errorf(doxie.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, doxie.Errorf(doxie.EUNAVAILABLE, "read %s: %v", url, err)
	}
	return body, nil
}
