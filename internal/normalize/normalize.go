// Package normalize maps the heterogeneous record shapes returned by the
// collaborator API (clients, company profile, catalog items, persisted
// proposals) into the canonical types of internal/proposal.
//
// External records are duck-typed with many optional aliased field names, so
// every logical field resolves through an explicit, ordered alias-precedence
// list instead of scattered fallbacks. All functions here are pure mappings:
// no network I/O ever happens inside this package.
package normalize

import (
	"strconv"
	"strings"
)

// firstString resolves a logical field from the first alias whose value is a
// non-empty string. Skip values are treated as absent.
func firstString(rec map[string]any, aliases []string, skip ...string) string {
	for _, key := range aliases {
		s := strings.TrimSpace(asString(rec[key]))
		if s == "" {
			continue
		}
		skipped := false
		for _, bad := range skip {
			if s == bad {
				skipped = true
				break
			}
		}
		if !skipped {
			return s
		}
	}
	return ""
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	}
	return ""
}

// asNumber accepts the numeric shapes JSON decoding and form handling
// produce: float64, int variants, and decimal strings.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
