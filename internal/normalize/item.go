package normalize

import (
	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
)

var (
	priceAliases   = []string{"price", "unit_price"}
	taxRateAliases = []string{"gst_rate", "gst", "tax_rate"}
	hsnSacAliases  = []string{"hsn_sac_code", "hsn_code", "hsn"}
	partSvcAliases = []string{"part_service_code", "part_code", "service_code"}
	kindAliases    = []string{"type", "item_type"}
)

// Item maps one raw line-item record of a persisted document. Quantity
// defaults to 1 when absent and price is required; a present but
// non-numeric quantity or price fails fast rather than coercing to zero.
// The tax rate is optional and degrades to 0.
func Item(rec map[string]any) (proposal.LineItem, error) {
	qty := 1
	if v, ok := lookupAny(rec, "quantity", "qty"); ok {
		n, numeric := asNumber(v)
		if !numeric {
			return proposal.LineItem{}, &proposal.StructuralError{Field: "quantity", Reason: "not numeric"}
		}
		qty = int(n)
	}

	v, ok := lookupAny(rec, priceAliases...)
	if !ok {
		return proposal.LineItem{}, &proposal.StructuralError{Field: "price", Reason: "missing"}
	}
	price, numeric := asNumber(v)
	if !numeric {
		return proposal.LineItem{}, &proposal.StructuralError{Field: "price", Reason: "not numeric"}
	}

	var taxRate float64
	if v, ok := lookupAny(rec, taxRateAliases...); ok {
		if n, numeric := asNumber(v); numeric {
			taxRate = n
		}
	}

	return proposal.LineItem{
		Name:            firstString(rec, []string{"name"}),
		Description:     firstString(rec, []string{"description"}),
		Quantity:        qty,
		UnitPrice:       price,
		TaxRatePercent:  taxRate,
		HSNSACCode:      firstString(rec, hsnSacAliases),
		PartServiceCode: firstString(rec, partSvcAliases),
		Kind:            itemKind(rec),
	}, nil
}

// CatalogItem maps a product-or-service catalog record into a line item ready
// to be added to a document: quantity 1 and the default 10% tax rate, with an
// unparseable unit price degrading to 0 the way the catalog screens do.
func CatalogItem(rec map[string]any) proposal.LineItem {
	price, _ := asNumber(firstOr(rec, priceAliases))
	return proposal.LineItem{
		Name:            firstString(rec, []string{"name"}),
		Description:     firstString(rec, []string{"description"}),
		Quantity:        1,
		UnitPrice:       price,
		TaxRatePercent:  10,
		HSNSACCode:      firstString(rec, hsnSacAliases),
		PartServiceCode: firstString(rec, partSvcAliases),
		Kind:            itemKind(rec),
	}
}

func itemKind(rec map[string]any) proposal.ItemKind {
	if firstString(rec, kindAliases) == string(proposal.ItemService) {
		return proposal.ItemService
	}
	return proposal.ItemProduct
}

func lookupAny(rec map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func firstOr(rec map[string]any, keys []string) any {
	v, _ := lookupAny(rec, keys...)
	return v
}
