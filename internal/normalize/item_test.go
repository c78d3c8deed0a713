package normalize

import (
	"testing"

	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemFullRecord(t *testing.T) {
	it, err := Item(map[string]any{
		"name":              "Mount kit",
		"description":       "Wall mount with fittings",
		"quantity":          float64(4),
		"price":             "249.50",
		"gst_rate":          float64(18),
		"hsn_code":          "7308",
		"part_service_code": "PK-12",
		"item_type":         "product",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mount kit", it.Name)
	assert.Equal(t, 4, it.Quantity)
	assert.InDelta(t, 249.50, it.UnitPrice, 1e-9)
	assert.InDelta(t, 18, it.TaxRatePercent, 1e-9)
	assert.Equal(t, "7308", it.HSNSACCode)
	assert.Equal(t, "PK-12", it.PartServiceCode)
	assert.Equal(t, proposal.ItemProduct, it.Kind)
}

func TestItemDefaults(t *testing.T) {
	it, err := Item(map[string]any{"name": "Install", "price": float64(90), "type": "service"})
	require.NoError(t, err)
	assert.Equal(t, 1, it.Quantity)
	assert.Zero(t, it.TaxRatePercent)
	assert.Equal(t, proposal.ItemService, it.Kind)
}

func TestItemStructuralErrors(t *testing.T) {
	var serr *proposal.StructuralError

	_, err := Item(map[string]any{"name": "no price"})
	require.ErrorAs(t, err, &serr)

	_, err = Item(map[string]any{"name": "bad price", "price": "lots"})
	require.ErrorAs(t, err, &serr)

	_, err = Item(map[string]any{"name": "bad qty", "price": float64(5), "qty": "many"})
	require.ErrorAs(t, err, &serr)
}

func TestItemMalformedOptionalDegrades(t *testing.T) {
	it, err := Item(map[string]any{"name": "x", "price": float64(5), "gst_rate": "free"})
	require.NoError(t, err)
	assert.Zero(t, it.TaxRatePercent)
}

func TestCatalogItem(t *testing.T) {
	it := CatalogItem(map[string]any{
		"name":        "Support plan",
		"description": "Yearly support",
		"unit_price":  "1200",
		"type":        "service",
	})
	assert.Equal(t, 1, it.Quantity)
	assert.InDelta(t, 1200, it.UnitPrice, 1e-9)
	assert.InDelta(t, 10, it.TaxRatePercent, 1e-9)
	assert.Equal(t, proposal.ItemService, it.Kind)

	// Unparseable catalog price degrades to zero rather than failing.
	it = CatalogItem(map[string]any{"name": "odd", "unit_price": "n/a"})
	assert.Zero(t, it.UnitPrice)
	assert.Equal(t, proposal.ItemProduct, it.Kind)
}
