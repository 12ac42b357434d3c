package goldmark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/doxie"
	"github.com/fwojciec/doxie/goldmark"
	"github.com/fwojciec/doxie/goquery"
)

func newExtractor() *goldmark.Extractor {
	return goldmark.NewExtractor(goquery.NewExtractor())
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("headings become sections", func(t *testing.T) {
		t.Parallel()

		e := newExtractor()
		doc, err := e.Extract("# Guide\n\nIntro text.\n\n## Install\n\n## Usage\n", nil)

		require.NoError(t, err)
		require.Len(t, doc.Sections, 3)
		assert.Equal(t, "Guide", doc.Sections[0].Title)
		assert.Equal(t, 1, doc.Sections[0].Level)
		assert.Equal(t, "Install", doc.Sections[1].Title)
		assert.Equal(t, 2, doc.Sections[1].Level)
		assert.Equal(t, "Usage", doc.Sections[2].Title)
	})

	t.Run("matches HTML extraction for equivalent content", func(t *testing.T) {
		t.Parallel()

		mdDoc, err := newExtractor().Extract("# Title", nil)
		require.NoError(t, err)

		htmlDoc, err := goquery.NewExtractor().Extract("<h1>Title</h1>", nil)
		require.NoError(t, err)

		assert.Equal(t, htmlDoc.Sections, mdDoc.Sections)
	})

	t.Run("tables render to extractable text", func(t *testing.T) {
		t.Parallel()

		e := newExtractor()
		doc, err := e.Extract("| Name | Value |\n| --- | --- |\n| alpha | one |\n", nil)

		require.NoError(t, err)
		assert.Contains(t, doc.Text, "alpha")
		assert.Contains(t, doc.Text, "one")
	})

	t.Run("fenced code blocks keep their text", func(t *testing.T) {
		t.Parallel()

		e := newExtractor()
		doc, err := e.Extract("```go\nfunc main() {}\n```\n", nil)

		require.NoError(t, err)
		assert.Contains(t, doc.Text, "func main()")
	})

	t.Run("metadata passes through", func(t *testing.T) {
		t.Parallel()

		e := newExtractor()
		doc, err := e.Extract("plain paragraph", map[string]string{doxie.MetaPath: "docs/guide.md"})

		require.NoError(t, err)
		assert.Equal(t, "docs/guide.md", doc.Metadata[doxie.MetaPath])
	})

	t.Run("no headings yields no sections", func(t *testing.T) {
		t.Parallel()

		e := newExtractor()
		doc, err := e.Extract("just text, no structure", nil)

		require.NoError(t, err)
		assert.Empty(t, doc.Sections)
	})
}
