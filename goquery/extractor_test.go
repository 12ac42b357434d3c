package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/doxie"
	"github.com/fwojciec/doxie/goquery"
)

func TestExtractor_Extract_text(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace and separates tags with spaces", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		doc, err := e.Extract("<p>Hello</p><p>World</p>", nil)

		require.NoError(t, err)
		assert.Equal(t, "Hello World", doc.Text)
	})

	t.Run("skips script and style content", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		doc, err := e.Extract(
			"<body><script>var x = 1;</script><style>p{color:red}</style><p>Visible</p></body>", nil)

		require.NoError(t, err)
		assert.Equal(t, "Visible", doc.Text)
	})

	t.Run("normalizes internal whitespace", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		doc, err := e.Extract("<p>  multiple \n\t spaces  </p>", nil)

		require.NoError(t, err)
		assert.Equal(t, "multiple spaces", doc.Text)
	})
}

func TestExtractor_Extract_sections(t *testing.T) {
	t.Parallel()

	t.Run("collects headings h1 through h6", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		doc, err := e.Extract(
			"<h1>Guide</h1><p>intro</p><h2>Install</h2><h2>Usage</h2><h6>Fine print</h6>", nil)

		require.NoError(t, err)
		require.Len(t, doc.Sections, 4)
		assert.Equal(t, doxie.Section{Title: "Guide", Level: 1}, doc.Sections[0])
		assert.Equal(t, doxie.Section{Title: "Install", Level: 2}, doc.Sections[1])
		assert.Equal(t, doxie.Section{Title: "Usage", Level: 2}, doc.Sections[2])
		assert.Equal(t, doxie.Section{Title: "Fine print", Level: 6}, doc.Sections[3])
	})

	t.Run("skips empty headings", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		doc, err := e.Extract("<h1></h1><h2>  </h2><h3>Real</h3>", nil)

		require.NoError(t, err)
		require.Len(t, doc.Sections, 1)
		assert.Equal(t, "Real", doc.Sections[0].Title)
	})

	t.Run("offsets are never computed", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		doc, err := e.Extract("<h1>Only</h1>", nil)

		require.NoError(t, err)
		require.Len(t, doc.Sections, 1)
		assert.Nil(t, doc.Sections[0].StartOffset)
		assert.Nil(t, doc.Sections[0].EndOffset)
	})
}

func TestExtractor_Extract_malformed(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()
	doc, err := e.Extract("<h1>Unclosed <p>and <b>tangled", nil)

	require.NoError(t, err, "malformed markup must not error")
	assert.NotEmpty(t, doc.Text)
}

func TestExtractor_Extract_deterministic(t *testing.T) {
	t.Parallel()

	const markup = "<h1>Guide</h1><p>Some body text</p><h2>Details</h2>"

	e := goquery.NewExtractor()
	first, err := e.Extract(markup, nil)
	require.NoError(t, err)

	second, err := e.Extract(markup, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, first.Sections, second.Sections)
}

func TestExtractor_Extract_metadata(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	meta := map[string]string{doxie.MetaSourceURL: "https://example.com/docs"}
	doc, err := e.Extract("<p>body</p>", meta)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/docs", doc.Metadata[doxie.MetaSourceURL])

	doc, err = e.Extract("<p>body</p>", nil)
	require.NoError(t, err)
	assert.NotNil(t, doc.Metadata, "nil metadata becomes an empty map")
}
