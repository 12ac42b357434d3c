package doxie

// Converter transforms HTML content into Markdown. Used by the export
// path to write crawled pages as markdown files.
type Converter interface {
	Convert(html string) (markdown string, err error)
}
