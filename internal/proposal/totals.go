package proposal

import (
	"fmt"
	"math"
)

// ComputeTotals sums line subtotals and their tax contributions over items.
// Arithmetic keeps full float64 precision; rounding to two decimals happens
// only at the rendering boundary. The function is pure: calling it repeatedly
// on the same slice yields the same result and never mutates items.
func ComputeTotals(items []LineItem) (Totals, error) {
	var t Totals
	for i, it := range items {
		if err := checkItem(i, it); err != nil {
			return Totals{}, err
		}
		line := float64(it.Quantity) * it.UnitPrice
		t.Subtotal += line
		t.TaxTotal += line * it.TaxRatePercent / 100
	}
	t.GrandTotal = t.Subtotal + t.TaxTotal
	return t, nil
}

// LineTotal returns the tax-inclusive amount of a single item as displayed in
// the last column of the item table.
func LineTotal(it LineItem) float64 {
	return float64(it.Quantity) * it.UnitPrice * (1 + it.TaxRatePercent/100)
}

func checkItem(i int, it LineItem) error {
	field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }
	if it.Quantity < 0 {
		return &StructuralError{Field: field("quantity"), Reason: "must not be negative"}
	}
	if math.IsNaN(it.UnitPrice) || math.IsInf(it.UnitPrice, 0) {
		return &StructuralError{Field: field("unitPrice"), Reason: "not a finite number"}
	}
	if it.UnitPrice < 0 {
		return &StructuralError{Field: field("unitPrice"), Reason: "must not be negative"}
	}
	if math.IsNaN(it.TaxRatePercent) || math.IsInf(it.TaxRatePercent, 0) {
		return &StructuralError{Field: field("taxRatePercent"), Reason: "not a finite number"}
	}
	if it.TaxRatePercent < 0 || it.TaxRatePercent > 100 {
		return &StructuralError{Field: field("taxRatePercent"), Reason: "outside 0-100"}
	}
	return nil
}
