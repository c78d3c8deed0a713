package export

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"

	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
)

// ChromeExporter prints the HTML rendition of a document through a headless
// browser. It needs a Chrome or Chromium binary on the host.
type ChromeExporter struct {
	// AssetDir is where template background images live.
	AssetDir string
}

func NewChromeExporter(assetDir string) *ChromeExporter {
	return &ChromeExporter{AssetDir: assetDir}
}

func (e *ChromeExporter) Export(ctx context.Context, doc proposal.Document, pages []proposal.Page, w io.Writer) error {
	html, err := PagesHTML(pages, e.AssetDir)
	if err != nil {
		return err
	}

	tmpHTML := filepath.Join(os.TempDir(), "proposal_"+uuid.NewString()+".html")
	if err := os.WriteFile(tmpHTML, html, 0644); err != nil {
		return err
	}
	defer os.Remove(tmpHTML)

	cctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuf []byte
	err = chromedp.Run(cctx,
		chromedp.Navigate("file://"+tmpHTML),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return err
	}

	_, err = w.Write(pdfBuf)
	return err
}
