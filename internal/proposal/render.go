package proposal

import "fmt"

// PageKind separates the primary item pages from the trailing explanation
// pages.
type PageKind string

const (
	PagePrimary     PageKind = "primary"
	PageExplanation PageKind = "explanation"
)

// Region names used in rendered pages.
const (
	RegionHeader     = "header"
	RegionSubHeader  = "subHeader"
	RegionClientInfo = "clientInfo"
	RegionTable      = "table"
	RegionTotals     = "totals"
	RegionNotes      = "notes"
	RegionFooter     = "footer"
)

// PageSize is the declared physical size of a page in PDF points. Consumers
// must preserve it so the template's background artwork stays aligned with
// the overlaid content.
type PageSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// A4Portrait is the size every proposal page renders at.
var A4Portrait = PageSize{Width: 595.28, Height: 841.89}

// Table carries the item rows of a page along with their resolved styles.
type Table struct {
	Columns []string    `json:"columns"`
	Rows    [][]string  `json:"rows"`
	Header  RegionStyle `json:"header"`
	Cell    RegionStyle `json:"cell"`
}

// Region is one named block of a page with its content and resolved style.
type Region struct {
	Name  string      `json:"name"`
	Style RegionStyle `json:"style"`
	Lines []string    `json:"lines,omitempty"`
	Table *Table      `json:"table,omitempty"`
}

// Page is the declarative view-model of one rendered page. Rendering is pure
// and deterministic given identical inputs, so pages can be snapshot-tested
// without any DOM or canvas dependency.
type Page struct {
	Kind       PageKind    `json:"kind"`
	Number     int         `json:"number"`
	Background string      `json:"background,omitempty"`
	Size       PageSize    `json:"size"`
	Container  RegionStyle `json:"container"`
	Regions    []Region    `json:"regions"`
}

var itemColumns = []string{"S.No", "Item", "HSN/SAC", "Code", "Qty", "Price", "GST", "Total"}

// Render combines a document, a resolved style, and a page plan into the
// ordered page sequence: all primary pages first, then one explanation page
// per chunk. Monetary values are rounded to two decimals here and only here.
func Render(doc Document, style TemplateStyle, plan Plan) ([]Page, error) {
	totals, err := ComputeTotals(doc.Items)
	if err != nil {
		return nil, err
	}

	pages := make([]Page, 0, len(plan.Pages)+len(plan.Explanations))
	number := 1
	for _, pp := range plan.Pages {
		pages = append(pages, renderPrimary(doc, style, pp, totals, number))
		number++
	}
	for _, ep := range plan.Explanations {
		pages = append(pages, renderExplanation(doc, style, ep, number))
		number++
	}
	return pages, nil
}

func renderPrimary(doc Document, style TemplateStyle, pp PagePlan, totals Totals, number int) Page {
	page := Page{
		Kind:       PagePrimary,
		Number:     number,
		Background: style.File,
		Size:       A4Portrait,
		Container:  style.Regions.Container,
	}

	if pp.ShowHeader() {
		header := Region{Name: RegionHeader, Style: style.Regions.Header, Lines: []string{doc.Issuer.Name}}
		if doc.Issuer.Address != "" {
			header.Lines = append(header.Lines, doc.Issuer.Address)
		}
		header.Lines = append(header.Lines, doc.Issuer.Phone+" | "+doc.Issuer.Email)
		page.Regions = append(page.Regions, header)

		sub := Region{Name: RegionSubHeader, Style: style.Regions.SubHeader, Lines: []string{
			"PROPOSAL",
			"Proposal #: " + doc.Number,
			"Date: " + doc.Date,
		}}
		if doc.DueDate != "" {
			sub.Lines = append(sub.Lines, "Due Date: "+doc.DueDate)
		}
		page.Regions = append(page.Regions, sub)

		client := Region{Name: RegionClientInfo, Style: style.Regions.ClientInfo, Lines: []string{
			"Proposal For:",
			doc.Recipient.Name,
		}}
		for _, line := range []string{doc.Recipient.Address, doc.Recipient.Phone, doc.Recipient.Email} {
			if line != "" {
				client.Lines = append(client.Lines, line)
			}
		}
		page.Regions = append(page.Regions, client)
	}

	if len(pp.Items) == 0 {
		page.Regions = append(page.Regions, Region{
			Name:  RegionClientInfo,
			Style: style.Regions.ClientInfo,
			Lines: []string{"Your proposal preview will appear here"},
		})
		return page
	}

	table := &Table{Columns: itemColumns, Header: style.Regions.TableHeader, Cell: style.Regions.TableCell}
	for local, it := range pp.Items {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", pp.Serial(local)),
			it.Name,
			it.HSNSACCode,
			it.PartServiceCode,
			fmt.Sprintf("%d", it.Quantity),
			money(it.UnitPrice),
			fmt.Sprintf("%g%%", it.TaxRatePercent),
			money(LineTotal(it)),
		})
	}
	page.Regions = append(page.Regions, Region{Name: RegionTable, Style: style.Regions.TableCell, Table: table})

	if pp.ShowTotals() {
		page.Regions = append(page.Regions, Region{Name: RegionTotals, Style: style.Regions.Totals, Lines: []string{
			"Subtotal: " + money(totals.Subtotal),
			"Total GST: " + money(totals.TaxTotal),
			"Grand Total: " + money(totals.GrandTotal),
		}})
	}
	if pp.ShowNotes() && doc.Notes != "" {
		page.Regions = append(page.Regions, Region{Name: RegionNotes, Style: style.Regions.Notes, Lines: []string{
			"Notes:",
			doc.Notes,
		}})
	}
	if pp.ShowFooter() {
		page.Regions = append(page.Regions, Region{Name: RegionFooter, Style: style.Regions.Footer, Lines: []string{
			"Thank you for your business!",
			doc.Issuer.Name + " | " + doc.Issuer.Phone + " | " + doc.Issuer.Email,
		}})
	}
	return page
}

func renderExplanation(doc Document, style TemplateStyle, ep ExplanationPlan, number int) Page {
	page := Page{
		Kind:       PageExplanation,
		Number:     number,
		Background: style.File,
		Size:       A4Portrait,
		Container:  style.Regions.Container,
		Regions: []Region{
			{Name: RegionHeader, Style: style.Regions.Header, Lines: []string{"Product & Service Explanations"}},
		},
	}
	if len(ep.Items) == 0 {
		page.Regions = append(page.Regions, Region{
			Name:  RegionNotes,
			Style: style.Regions.Notes,
			Lines: []string{"No items added yet"},
		})
		return page
	}
	body := Region{Name: RegionNotes, Style: style.Regions.TableCell}
	for _, it := range ep.Items {
		desc := it.Description
		if desc == "" {
			desc = "No description provided."
		}
		body.Lines = append(body.Lines, it.Name, desc)
	}
	page.Regions = append(page.Regions, body)
	return page
}

// money formats a monetary value for display. The underlying totals keep full
// precision; rounding is never compounded across calls.
func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
