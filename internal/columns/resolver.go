// Package columns maps arbitrary carrier header text onto canonical schedule
// fields. Matching is an ordered rule list so precedence is an explicit,
// testable contract rather than incidental branch order.
package columns

import (
	"strings"
)

// Field is a canonical column of the schedule record.
type Field string

const (
	FieldVessel      Field = "vessel"
	FieldVoyage      Field = "voyage"
	FieldEtd         Field = "etd"
	FieldEta         Field = "eta"
	FieldTransitTime Field = "transit_time"
	FieldCyCutoff    Field = "cy_cutoff"
	FieldSiCutoff    Field = "si_cutoff"
	FieldPol         Field = "pol"
	FieldPod         Field = "pod"
)

// rule matches a header when its normalized text contains any keyword of
// Any, and every keyword of All. Rules are evaluated in declaration order
// and a header claimed by an earlier rule is not reconsidered.
type rule struct {
	field Field
	any   []string
	all   []string
}

var rules = []rule{
	{field: FieldVessel, any: []string{"VESSEL", "SHIP", "VSL"}},
	{field: FieldVoyage, any: []string{"VOY"}},
	{field: FieldEtd, any: []string{"ETD", "DEPARTURE"}},
	{field: FieldEta, any: []string{"ETA", "ARRIVAL"}},
	{field: FieldTransitTime, any: []string{"T/T", "TRANSIT"}},
	{field: FieldCyCutoff, all: []string{"CY", "CUT"}},
	{field: FieldSiCutoff, any: []string{"SI", "DOC", "S/I"}},
	{field: FieldPol, any: []string{"POL", "ORIGIN"}},
	{field: FieldPod, any: []string{"POD", "DEST"}},
}

func (ru rule) matches(header string) bool {
	for _, kw := range ru.all {
		if !strings.Contains(header, kw) {
			return false
		}
	}
	if len(ru.all) > 0 {
		return true
	}
	for _, kw := range ru.any {
		if strings.Contains(header, kw) {
			return true
		}
	}
	return false
}

func normalizeHeader(h string) string {
	return strings.ToUpper(strings.TrimSpace(h))
}

// Resolve maps each canonical field to the index of the first header that
// satisfies its rule. Rules run in table order; once a header is claimed it
// stays claimed, so "CY Cut-off Date" goes to cy_cutoff before the si rule
// can see it.
func Resolve(headers []string) map[Field]int {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}
	claimed := make([]bool, len(headers))
	resolved := make(map[Field]int, len(rules))
	for _, ru := range rules {
		for i, h := range normalized {
			if claimed[i] || h == "" {
				continue
			}
			if ru.matches(h) {
				resolved[ru.field] = i
				claimed[i] = true
				break
			}
		}
	}
	return resolved
}

// Value reads the resolved field out of a data row, falling back to def when
// the field was never matched or the cell is out of range.
func Value(row []string, resolved map[Field]int, field Field, def string) string {
	idx, ok := resolved[field]
	if !ok || idx >= len(row) {
		return def
	}
	v := strings.TrimSpace(row[idx])
	if v == "" {
		return def
	}
	return v
}

// IsHeaderEcho reports whether a resolved vessel cell is actually a stale
// re-parsed header rather than data.
func IsHeaderEcho(vessel string) bool {
	n := normalizeHeader(vessel)
	for _, kw := range []string{"VESSEL", "SHIP", "VSL"} {
		if n == kw {
			return true
		}
	}
	return false
}
