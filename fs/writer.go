// Package fs writes exported documentation to the local filesystem.
package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/doxie"
)

// URLToPath converts a page URL to a relative markdown file path.
// Example: https://example.com/docs/api/users → docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", doxie.Errorf(doxie.EINVALID, "invalid URL: %v", err)
	}

	path := strings.TrimPrefix(u.Path, "/")
	if path == "" {
		return "index.md", nil
	}
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}
	return path + ".md", nil
}

// Writer writes markdown pages under a base directory, one file per
// page, laid out by URL path.
type Writer struct {
	baseDir string

	// now stamps the frontmatter date; replaceable in tests.
	now func() time.Time
}

// NewWriter creates a Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, now: time.Now}
}

// Write stores one markdown page, creating parent directories as
// needed. The file carries YAML frontmatter with the source URL, the
// page title, and the export date.
func (w *Writer) Write(pageURL, title, markdown string) error {
	relPath, err := URLToPath(pageURL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(pageURL)
	b.WriteString("\ntitle: ")
	b.WriteString(title)
	b.WriteString("\nexported: ")
	b.WriteString(w.now().Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)

	return os.WriteFile(fullPath, []byte(b.String()), 0644)
}
