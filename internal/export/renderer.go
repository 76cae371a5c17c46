package export

import "strings"

// Renderer turns paginated report text into the bytes of a downloadable
// document. The PDF rasterizer is an external collaborator behind this
// interface: the exporter passes fully-built text in and accepts an
// opaque binary result out. Any error from a renderer is treated as a
// recoverable export failure, not a fault in the report itself.
type Renderer interface {
	// Render produces the document bytes for an ordered page sequence.
	Render(pages []string) ([]byte, error)
	// Ext is the filename extension including the dot, e.g. ".pdf".
	Ext() string
}

// TextRenderer is the bundled renderer and the universal fallback: it
// emits the paginated document as plain text with form-feed page breaks.
type TextRenderer struct{}

func (TextRenderer) Render(pages []string) ([]byte, error) {
	return []byte(strings.Join(pages, "\n\f\n")), nil
}

func (TextRenderer) Ext() string { return ".txt" }
