package proposal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc(items []LineItem) Document {
	return Document{
		ID:     "11111111-2222-3333-4444-555555555555",
		Number: "PROP-1001",
		Date:   "2025-04-01",
		Issuer: Party{
			Name:    "Acme Studio",
			Email:   "hello@acme.test",
			Phone:   "+100200300",
			Address: "1 Acme Way, Springfield, US",
		},
		Recipient: Party{
			Name:    "Globex Corp",
			Email:   "buyer@globex.test",
			Phone:   "+900800700",
			Address: "9 Globex Plaza, Shelbyville, US",
		},
		Items:      items,
		Notes:      "Valid for 30 days.",
		TemplateID: 1,
		Status:     StatusDraft,
	}
}

func regionNames(p Page) []string {
	names := make([]string, len(p.Regions))
	for i, r := range p.Regions {
		names[i] = r.Name
	}
	return names
}

func TestRenderDeterministic(t *testing.T) {
	doc := sampleDoc(makeItems(13))
	style := NewRegistry().Lookup(doc.TemplateID)
	plan, err := Paginate(doc.Items, DefaultCapacity)
	require.NoError(t, err)

	first, err := Render(doc, style, plan)
	require.NoError(t, err)
	second, err := Render(doc, style, plan)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderPageOrderAndKinds(t *testing.T) {
	doc := sampleDoc(makeItems(23))
	style := NewRegistry().Lookup(doc.TemplateID)
	plan, err := Paginate(doc.Items, DefaultCapacity)
	require.NoError(t, err)

	pages, err := Render(doc, style, plan)
	require.NoError(t, err)

	// 3 primary pages followed by 3 explanation pages, numbered 1..6.
	require.Len(t, pages, 6)
	for i, p := range pages {
		assert.Equal(t, i+1, p.Number)
		if i < 3 {
			assert.Equal(t, PagePrimary, p.Kind)
		} else {
			assert.Equal(t, PageExplanation, p.Kind)
		}
		assert.Equal(t, A4Portrait, p.Size)
		assert.Equal(t, style.File, p.Background)
	}
}

func TestRenderSectionVisibility(t *testing.T) {
	doc := sampleDoc(makeItems(23))
	style := NewRegistry().Lookup(doc.TemplateID)
	plan, err := Paginate(doc.Items, DefaultCapacity)
	require.NoError(t, err)
	pages, err := Render(doc, style, plan)
	require.NoError(t, err)

	assert.Contains(t, regionNames(pages[0]), RegionHeader)
	assert.Contains(t, regionNames(pages[0]), RegionClientInfo)
	assert.NotContains(t, regionNames(pages[0]), RegionTotals)

	assert.NotContains(t, regionNames(pages[1]), RegionHeader)
	assert.NotContains(t, regionNames(pages[1]), RegionTotals)
	assert.Contains(t, regionNames(pages[1]), RegionTable)

	last := pages[2]
	assert.NotContains(t, regionNames(last), RegionHeader)
	assert.Contains(t, regionNames(last), RegionTotals)
	assert.Contains(t, regionNames(last), RegionNotes)
	assert.Contains(t, regionNames(last), RegionFooter)
}

func TestRenderSerialNumbersAndRounding(t *testing.T) {
	items := []LineItem{
		{Name: "one", Quantity: 3, UnitPrice: 100, TaxRatePercent: 10},
		{Name: "two", Quantity: 1, UnitPrice: 1.234, TaxRatePercent: 0},
	}
	doc := sampleDoc(items)
	style := NewRegistry().Lookup(doc.TemplateID)
	plan, err := Paginate(doc.Items, DefaultCapacity)
	require.NoError(t, err)
	pages, err := Render(doc, style, plan)
	require.NoError(t, err)

	var table *Table
	for _, r := range pages[0].Regions {
		if r.Name == RegionTable {
			table = r.Table
		}
	}
	require.NotNil(t, table)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "1", table.Rows[0][0])
	assert.Equal(t, "2", table.Rows[1][0])
	assert.Equal(t, "$100.00", table.Rows[0][5])
	assert.Equal(t, "$330.00", table.Rows[0][7])
	// Display rounding only; two decimals everywhere.
	assert.Equal(t, "$1.23", table.Rows[1][5])

	var totals *Region
	for i := range pages[0].Regions {
		if pages[0].Regions[i].Name == RegionTotals {
			totals = &pages[0].Regions[i]
		}
	}
	require.NotNil(t, totals)
	assert.Equal(t, "Subtotal: $301.23", totals.Lines[0])
	assert.Equal(t, "Total GST: $30.00", totals.Lines[1])
	assert.Equal(t, "Grand Total: $331.23", totals.Lines[2])
}

func TestRenderEmptyDocument(t *testing.T) {
	doc := sampleDoc(nil)
	style := NewRegistry().Lookup(doc.TemplateID)
	plan, err := Paginate(doc.Items, DefaultCapacity)
	require.NoError(t, err)
	pages, err := Render(doc, style, plan)
	require.NoError(t, err)

	require.Len(t, pages, 2)
	assert.Equal(t, PagePrimary, pages[0].Kind)
	assert.Equal(t, PageExplanation, pages[1].Kind)

	joined := strings.Join(regionLines(pages[0]), "\n")
	assert.Contains(t, joined, "Your proposal preview will appear here")
	joined = strings.Join(regionLines(pages[1]), "\n")
	assert.Contains(t, joined, "No items added yet")
}

func TestRenderExplanationFallbackDescription(t *testing.T) {
	doc := sampleDoc([]LineItem{{Name: "bare", Quantity: 1, UnitPrice: 5}})
	style := NewRegistry().Lookup(doc.TemplateID)
	plan, err := Paginate(doc.Items, DefaultCapacity)
	require.NoError(t, err)
	pages, err := Render(doc, style, plan)
	require.NoError(t, err)

	require.Len(t, pages, 2)
	joined := strings.Join(regionLines(pages[1]), "\n")
	assert.Contains(t, joined, "bare")
	assert.Contains(t, joined, "No description provided.")
}

func regionLines(p Page) []string {
	var out []string
	for _, r := range p.Regions {
		out = append(out, r.Lines...)
	}
	return out
}
