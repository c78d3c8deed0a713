package normalize

import (
	"strings"

	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
)

// Ordered component keys of a structured address object.
var addressComponentKeys = [][]string{
	{"line1", "address_line_1", "address_line1"},
	{"line2", "address_line_2", "address_line2"},
	{"city"},
	{"state"},
	{"country"},
	{"pincode", "postal_code"},
}

// Alias precedence for address-bearing fields on a party record.
var addressFieldAliases = []string{
	"address", "billing_address", "company_address",
	"street_address", "physical_address", "location",
}

// FormatAddress renders an address for display. Strings pass through
// unchanged. Structured input joins the present components with ", ",
// skipping anything absent or carrying the literal text "null"/"undefined";
// the result never ends in a separator.
func FormatAddress(v any) string {
	switch addr := v.(type) {
	case nil:
		return ""
	case string:
		return addr
	case proposal.Address:
		return joinAddressParts([]string{addr.Line1, addr.Line2, addr.City, addr.State, addr.Country, addr.PostalCode})
	case *proposal.Address:
		if addr == nil {
			return ""
		}
		return FormatAddress(*addr)
	case map[string]any:
		parts := make([]string, 0, len(addressComponentKeys))
		for _, aliases := range addressComponentKeys {
			parts = append(parts, firstString(addr, aliases))
		}
		return joinAddressParts(parts)
	}
	return ""
}

func joinAddressParts(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == "null" || p == "undefined" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ", ")
}

// resolveAddress extracts a display address from a party record: a structured
// or pre-joined address field first (in alias order), then a join of loose
// component fields.
func resolveAddress(rec map[string]any) string {
	for _, key := range addressFieldAliases {
		switch v := rec[key].(type) {
		case map[string]any:
			return FormatAddress(v)
		case string:
			if strings.TrimSpace(v) != "" {
				return v
			}
		}
	}
	parts := make([]string, 0, len(addressComponentKeys))
	for _, aliases := range addressComponentKeys {
		parts = append(parts, firstString(rec, aliases))
	}
	return joinAddressParts(parts)
}
