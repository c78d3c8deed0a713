package normalize

import (
	"strings"
	"testing"

	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAddressString(t *testing.T) {
	assert.Equal(t, "42 Main St, Metropolis", FormatAddress("42 Main St, Metropolis"))
	assert.Equal(t, "", FormatAddress(""))
	assert.Equal(t, "", FormatAddress(nil))
}

func TestFormatAddressStructured(t *testing.T) {
	assert.Equal(t, "A, B", FormatAddress(map[string]any{"line1": "A", "city": "B"}))
	assert.Equal(t, "", FormatAddress(map[string]any{"line1": nil, "city": nil}))
	assert.Equal(t, "A, B, C, D, E, F", FormatAddress(map[string]any{
		"line1":   "A",
		"line2":   "B",
		"city":    "C",
		"state":   "D",
		"country": "E",
		"pincode": "F",
	}))
}

func TestFormatAddressSkipsNullLiterals(t *testing.T) {
	got := FormatAddress(map[string]any{
		"line1": "12 High St",
		"line2": "null",
		"city":  "undefined",
		"state": "KA",
	})
	assert.Equal(t, "12 High St, KA", got)
	assert.NotContains(t, got, "null")
	assert.NotContains(t, got, "undefined")
	assert.False(t, strings.HasSuffix(got, ", "))
}

func TestFormatAddressPostalCodeAlias(t *testing.T) {
	assert.Equal(t, "X, 560001", FormatAddress(map[string]any{"line1": "X", "postal_code": "560001"}))
	// pincode wins over postal_code when both are present.
	assert.Equal(t, "X, 560001", FormatAddress(map[string]any{"line1": "X", "pincode": "560001", "postal_code": "999999"}))
}

func TestFormatAddressStructType(t *testing.T) {
	addr := proposal.Address{Line1: "1 Acme Way", City: "Springfield", Country: "US"}
	assert.Equal(t, "1 Acme Way, Springfield, US", FormatAddress(addr))
	assert.Equal(t, "1 Acme Way, Springfield, US", FormatAddress(&addr))
	var nilAddr *proposal.Address
	assert.Equal(t, "", FormatAddress(nilAddr))
}

func TestResolveAddressPrecedence(t *testing.T) {
	// A structured address object wins over loose component fields.
	rec := map[string]any{
		"address":        map[string]any{"line1": "Obj St", "city": "Objville"},
		"address_line_1": "Loose St",
	}
	assert.Equal(t, "Obj St, Objville", resolveAddress(rec))

	// Alias order: billing_address before company_address.
	rec = map[string]any{
		"billing_address": "Billing Rd",
		"company_address": "Company Rd",
	}
	assert.Equal(t, "Billing Rd", resolveAddress(rec))

	// Component join as a last resort.
	rec = map[string]any{
		"address_line_1": "Unit 4",
		"city":           "Pune",
		"postal_code":    "411001",
	}
	assert.Equal(t, "Unit 4, Pune, 411001", resolveAddress(rec))
}
