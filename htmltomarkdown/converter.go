// Package htmltomarkdown converts HTML pages to Markdown for export.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/fwojciec/doxie"
)

// Ensure Converter implements doxie.Converter at compile time.
var _ doxie.Converter = (*Converter)(nil)

// Converter renders HTML as CommonMark with table support.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a Converter.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", doxie.Errorf(doxie.EINVALID, "empty HTML input")
	}
	return c.conv.ConvertString(html)
}
