// Package cutoff derives concrete CY/SI cut-off dates from the day-of-week
// rule tables carriers embed alongside their schedules. Cut-off policy is
// expressed relative to the sailing's own departure weekday ("cut-off is the
// Saturday before departure"), so the computable rule is the nearest prior
// occurrence of the named weekday on or before the ETD.
package cutoff

import (
	"regexp"
	"strings"
	"time"

	"scheduleorganizer/internal/columns"
)

// Rule holds one service's cut-off policy. Either component of a cell may be
// absent: a rule can name a weekday with no time, or a time with no weekday.
type Rule struct {
	EtdDay string // weekday code of the sailing itself, informational
	CyDay  string
	CyTime string
	SiDay  string
	SiTime string
}

// Table maps uppercased service names to their rules. It is built once per
// source document and consumed read-only while that document's data rows are
// processed; it is never persisted across parse calls.
type Table map[string]Rule

var (
	timePattern    = regexp.MustCompile(`\d{1,2}:\d{2}`)
	weekdayPattern = regexp.MustCompile(`\b(MON|TUE|WED|THU|FRI|SAT|SUN)\b`)
)

var weekdays = map[string]time.Weekday{
	"MON": time.Monday, "TUE": time.Tuesday, "WED": time.Wednesday,
	"THU": time.Thursday, "FRI": time.Friday, "SAT": time.Saturday,
	"SUN": time.Sunday,
}

// ParseCell splits a cut-off cell like "SAT 18:00" into its weekday and time
// components. Either may come back empty.
func ParseCell(text string) (day, clock string) {
	upper := strings.ToUpper(text)
	if m := weekdayPattern.FindString(upper); m != "" {
		day = m
	}
	if m := timePattern.FindString(upper); m != "" {
		clock = m
	}
	return day, clock
}

// BuildTable reads a reference-table region into a rule table. Columns are
// located by keyword within the region's local header: the service name
// column, an ETD day column, and one cut-off column each for CY and SI.
func BuildTable(region columns.ReferenceRegion) Table {
	serviceIdx, etdIdx, cyIdx, siIdx := -1, -1, -1, -1
	for i, h := range region.Header {
		upper := strings.ToUpper(h)
		switch {
		case serviceIdx < 0 && strings.Contains(upper, "SERVICE"):
			serviceIdx = i
		case etdIdx < 0 && strings.Contains(upper, "ETD"):
			etdIdx = i
		case cyIdx < 0 && strings.Contains(upper, "CY"):
			cyIdx = i
		case siIdx < 0 && (strings.Contains(upper, "SI") || strings.Contains(upper, "DOC")):
			siIdx = i
		}
	}
	table := make(Table)
	if serviceIdx < 0 {
		return table
	}
	cell := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
	for _, row := range region.Rows {
		service := strings.ToUpper(cell(row, serviceIdx))
		if service == "" {
			continue
		}
		rule := Rule{}
		rule.EtdDay, _ = ParseCell(cell(row, etdIdx))
		rule.CyDay, rule.CyTime = ParseCell(cell(row, cyIdx))
		rule.SiDay, rule.SiTime = ParseCell(cell(row, siIdx))
		table[service] = rule
	}
	return table
}

// Compute returns the cut-off values for a sailing, looking the service up
// case-insensitively. A miss yields empty cut-offs; CY and SI are computed
// independently and may differ in weekday and time.
func (t Table) Compute(service string, etd time.Time) (cy, si string) {
	rule, ok := t[strings.ToUpper(strings.TrimSpace(service))]
	if !ok {
		return "", ""
	}
	cy = render(etd, rule.CyDay, rule.CyTime)
	si = render(etd, rule.SiDay, rule.SiTime)
	return cy, si
}

// render walks back from the ETD to the most recent occurrence of the rule's
// weekday. It must not wrap forward past the ETD: a sailing departing on the
// rule's own weekday cuts off that same day.
func render(etd time.Time, day, clock string) string {
	target, ok := weekdays[day]
	if !ok {
		if clock == "" {
			return ""
		}
		return etd.Format("2006/01/02") + " " + clock
	}
	offset := (int(etd.Weekday()) - int(target) + 7) % 7
	date := etd.AddDate(0, 0, -offset).Format("2006/01/02")
	if clock == "" {
		return date
	}
	return date + " " + clock
}
