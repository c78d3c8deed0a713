package export

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/lvillar/gofpdf/doctpl"

	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
)

// PDFExporter renders pages natively through the document template DSL.
type PDFExporter struct{}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

func (e *PDFExporter) Export(ctx context.Context, doc proposal.Document, pages []proposal.Page, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tpl, err := buildTemplate(ctx, doc, pages)
	if err != nil {
		return err
	}
	return doctpl.RenderDocument(w, tpl)
}

// buildTemplate maps the page view-models onto the declarative PDF schema.
// The mapping is pure, so it carries the context check per page and leaves
// the actual PDF writing to the caller.
func buildTemplate(ctx context.Context, doc proposal.Document, pages []proposal.Page) (*doctpl.Document, error) {
	tpl := &doctpl.Document{
		Title:    doc.Number,
		Author:   doc.Issuer.Name,
		PageSize: "A4",
		Margin:   &doctpl.Margin{Top: 18, Right: 15, Bottom: 18, Left: 15},
		Font:     &doctpl.Font{Family: "Helvetica", Size: 11},
		Footer:   &doctpl.Footer{Text: "Page {page} of {pages}", Align: "C"},
	}
	for _, pg := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tpl.Pages = append(tpl.Pages, doctpl.Page{Elements: pageElements(pg)})
	}
	return tpl, nil
}

func pageElements(pg proposal.Page) []doctpl.Element {
	var els []doctpl.Element
	for _, region := range pg.Regions {
		els = append(els, regionElements(region)...)
	}
	return els
}

func regionElements(region proposal.Region) []doctpl.Element {
	var els []doctpl.Element
	switch region.Name {
	case proposal.RegionHeader:
		for i, line := range region.Lines {
			if i == 0 {
				els = append(els, doctpl.Element{
					Type:  "heading",
					Text:  line,
					Level: 1,
					Align: pdfAlign(region.Style.Align),
					Color: hexColor(region.Style.Color),
				})
				continue
			}
			els = append(els, doctpl.Element{Type: "paragraph", Text: line, Align: pdfAlign(region.Style.Align)})
		}
		els = append(els, doctpl.Element{Type: "hr"})
	case proposal.RegionSubHeader:
		if len(region.Lines) > 0 {
			els = append(els, doctpl.Element{
				Type:  "heading",
				Text:  region.Lines[0],
				Level: 2,
				Align: pdfAlign(region.Style.Align),
				Color: hexColor(region.Style.Color),
			})
			if len(region.Lines) > 1 {
				els = append(els, doctpl.Element{
					Type: "paragraph",
					Text: strings.Join(region.Lines[1:], "\n"),
				})
			}
		}
	case proposal.RegionTable:
		if region.Table != nil {
			els = append(els, tableElement(region.Table))
		}
	case proposal.RegionTotals:
		els = append(els, doctpl.Element{Type: "spacer", SpacerHeight: 4})
		els = append(els, doctpl.Element{
			Type:  "paragraph",
			Text:  strings.Join(region.Lines, "\n"),
			Align: "R",
			Font:  &doctpl.Font{Style: "B", Size: pxSize(region.Style.FontSize, 12)},
			Color: hexColor(region.Style.Color),
		})
	case proposal.RegionFooter:
		els = append(els, doctpl.Element{Type: "hr"})
		els = append(els, doctpl.Element{
			Type:  "paragraph",
			Text:  strings.Join(region.Lines, "\n"),
			Align: "C",
			Color: hexColor(region.Style.Color),
		})
	default:
		if len(region.Lines) > 0 {
			els = append(els, doctpl.Element{
				Type:  "paragraph",
				Text:  strings.Join(region.Lines, "\n"),
				Align: pdfAlign(region.Style.Align),
				Color: hexColor(region.Style.Color),
			})
		}
	}
	return els
}

func tableElement(tbl *proposal.Table) doctpl.Element {
	el := doctpl.Element{
		Type:        "table",
		HeaderStyle: &doctpl.CellStyle{FillColor: hexColor(tbl.Header.Background), TextColor: hexColor(tbl.Header.Color)},
		CellStyle:   &doctpl.CellStyle{TextColor: hexColor(tbl.Cell.Color)},
	}
	for _, col := range tbl.Columns {
		align := "L"
		switch col {
		case "S.No", "Qty", "GST":
			align = "C"
		case "Price", "Total":
			align = "R"
		}
		el.Columns = append(el.Columns, doctpl.TableColumn{Header: col, Align: align})
	}
	el.Rows = tbl.Rows
	return el
}

func pdfAlign(align string) string {
	switch align {
	case "center":
		return "C"
	case "right":
		return "R"
	default:
		return "L"
	}
}

// pxSize converts a "28px" style size into points for the PDF layer.
func pxSize(s string, fallback float64) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v * 0.75
}

// hexColor parses "#rrggbb"; nil means the backend default.
func hexColor(s string) *doctpl.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return nil
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil
	}
	return &doctpl.Color{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}
}
