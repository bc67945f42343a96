package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CanonicalLayout is the full canonical date form used across the pipeline.
const CanonicalLayout = "2006/01/02"

// candidateLayouts are tried in fixed priority order; the first layout that
// parses wins. DD/MM is deliberately tried before MM/DD, so an ambiguous
// value like 03/04/2026 resolves as 3 April. Trial order is the tie-break,
// not a correctness guarantee.
var candidateLayouts = []string{
	"2006/01/02",
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
}

var shortForm = regexp.MustCompile(`^\d{2}-\d{2}$`)

var bracketed = regexp.MustCompile(`[(（][^)）]*[)）]`)

// StripBrackets removes parenthetical annotations from a field value and
// returns the cleaned value plus the annotation contents. Schedules often
// carry a transit note inside the date cell, e.g. "2026/03/10 (2 days)".
func StripBrackets(s string) (clean string, notes []string) {
	matches := bracketed.FindAllString(s, -1)
	for _, m := range matches {
		notes = append(notes, strings.Trim(m, "()（）"))
	}
	clean = strings.TrimSpace(bracketed.ReplaceAllString(s, ""))
	return clean, notes
}

// Normalize converts a value of unknown origin type into the canonical
// YYYY/MM/DD form. It never fails: unparseable text comes back unchanged and
// native time values fall back to their own canonical rendering. Downstream
// validity is decided by emptiness, not by parse failure.
func Normalize(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(CanonicalLayout)
	case string:
		return normalizeText(v)
	default:
		return normalizeText(fmt.Sprintf("%v", v))
	}
}

func normalizeText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	clean, _ := StripBrackets(s)
	if clean == "" {
		return s
	}
	// The short MM-DD form from the extraction collaborators passes through;
	// the missing year is resolved later, for month bucketing only.
	if shortForm.MatchString(clean) {
		return clean
	}
	for _, layout := range candidateLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return t.Format(CanonicalLayout)
		}
	}
	return s
}

// Parse reads a canonical full-form date back into a time.Time.
func Parse(s string) (time.Time, bool) {
	t, err := time.Parse(CanonicalLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

var (
	shortMonth = regexp.MustCompile(`(\d{2})-\d{2}$`)
	fullMonth  = regexp.MustCompile(`\d{4}[-/](\d{2})[-/]\d{2}`)
)

// MonthOf extracts the sailing month from an ETD string: a trailing MM-DD
// pattern first, then a full-date pattern, else the current processing month.
// A date that yields no month defaults rather than errors.
func MonthOf(etd string) int {
	etd = strings.TrimSpace(etd)
	if etd == "" {
		return int(time.Now().Month())
	}
	if m := shortMonth.FindStringSubmatch(etd); m != nil {
		if month, err := strconv.Atoi(m[1]); err == nil && month >= 1 && month <= 12 {
			return month
		}
	}
	if m := fullMonth.FindStringSubmatch(etd); m != nil {
		if month, err := strconv.Atoi(m[1]); err == nil && month >= 1 && month <= 12 {
			return month
		}
	}
	return int(time.Now().Month())
}

var bareInt = regexp.MustCompile(`^\d+$`)

// NormalizeTransit gives a bare integer transit value its unit suffix.
func NormalizeTransit(tt string) string {
	tt = strings.TrimSpace(tt)
	if bareInt.MatchString(tt) {
		return tt + " days"
	}
	return tt
}

// DeriveTransit fills in the transit time when the source omitted it but
// both endpoints parsed to full dates. Negative spans stay blank.
func DeriveTransit(etd, eta string) string {
	start, ok1 := Parse(etd)
	end, ok2 := Parse(eta)
	if !ok1 || !ok2 {
		return ""
	}
	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		return ""
	}
	return strconv.Itoa(days) + " days"
}
