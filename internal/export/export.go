// Package export turns rendered page sequences into downloadable PDFs.
//
// Two backends exist: the native one drives a PDF library directly from the
// page view-models, the chrome one prints an HTML rendition through a
// headless browser. Both consume the same []proposal.Page, so pagination and
// rounding behave identically regardless of backend.
package export

import (
	"context"
	"io"

	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
)

// Exporter writes a PDF for an already-rendered page sequence.
type Exporter interface {
	Export(ctx context.Context, doc proposal.Document, pages []proposal.Page, w io.Writer) error
}

// Select picks a backend by name. Anything other than "chrome" gets the
// native renderer.
func Select(name, assetDir string) Exporter {
	if name == "chrome" {
		return NewChromeExporter(assetDir)
	}
	return NewPDFExporter()
}

// Filename is the download name for an exported document.
func Filename(doc proposal.Document) string {
	number := doc.Number
	if number == "" {
		number = "proposal"
	}
	return number + ".pdf"
}
