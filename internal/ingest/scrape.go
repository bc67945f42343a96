package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"

	"scheduleorganizer/internal/dates"
	"scheduleorganizer/internal/schema"
)

// ParseScrapedTables maps every table of a rendered carrier page into
// records, filtered to sailings inside the target year/month. Duplicate
// sailings across tables of the same page are suppressed with the merge
// store's natural key, scoped to this call.
func ParseScrapedTables(html string, opts Options, year, month int) ([]schema.ScheduleRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse page html: %w", err)
	}

	dedup := make(sessionDedup)
	var records []schema.ScheduleRecord
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		rows := tableCells(table)
		for _, record := range MapRows(rows, opts) {
			if !etdInTargetMonth(record.Etd, year, month) {
				continue
			}
			if dedup.seen(&record) {
				continue
			}
			records = append(records, record)
		}
	})
	log.Debugf("scrape adapter kept %d records for %04d-%02d", len(records), year, month)
	return records, nil
}

func tableCells(table *goquery.Selection) [][]string {
	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})
	return rows
}

// Labeled-field patterns for single-sailing detail pages. The vessel line
// carries the voyage as its trailing whitespace-delimited token.
var (
	detailVessel  = regexp.MustCompile(`(?im)^\s*vessel(?:\s*/?\s*voyage)?\s*[:：]\s*(.+)$`)
	detailEtd     = regexp.MustCompile(`(?im)departure(?:\s*date)?\s*[:：]\s*([0-9][0-9/\-. ]*)`)
	detailEta     = regexp.MustCompile(`(?im)arrival(?:\s*date)?\s*[:：]\s*([0-9][0-9/\-. ]*)`)
	detailTransit = regexp.MustCompile(`(?im)(?:total\s+)?transit(?:\s*time)?\s*[:：]\s*(\d+)`)
	detailCy      = regexp.MustCompile(`(?im)cy\s*(?:cut(?:-?off)?|closing)[^:：]*[:：]\s*(.+)$`)
	detailSi      = regexp.MustCompile(`(?im)(?:vgm|s/?i|doc(?:ument)?)\s*(?:closing|cut(?:-?off)?)[^:：]*[:：]\s*(.+)$`)
)

// ParseDetailText extracts the single sailing described by a detail page.
// The boolean reports whether a sailing inside the target month was found.
func ParseDetailText(text string, opts Options, year, month int) (schema.ScheduleRecord, bool) {
	record := schema.ScheduleRecord{Carrier: opts.Carrier, Pol: opts.Pol, Pod: opts.Pod}

	if m := detailVessel.FindStringSubmatch(text); m != nil {
		record.Vessel, record.Voyage = splitVesselVoyage(m[1])
	}
	if m := detailEtd.FindStringSubmatch(text); m != nil {
		record.Etd = dates.Normalize(m[1])
	}
	if m := detailEta.FindStringSubmatch(text); m != nil {
		record.Eta = dates.Normalize(m[1])
	}
	if m := detailTransit.FindStringSubmatch(text); m != nil {
		record.TransitTime = dates.NormalizeTransit(m[1])
	}
	if m := detailCy.FindStringSubmatch(text); m != nil {
		record.CyCutoff = dates.Normalize(strings.TrimSpace(m[1]))
	}
	if m := detailSi.FindStringSubmatch(text); m != nil {
		record.SiCutoff = dates.Normalize(strings.TrimSpace(m[1]))
	}

	if !record.IsValid() || !etdInTargetMonth(record.Etd, year, month) {
		return schema.ScheduleRecord{}, false
	}
	if record.TransitTime == "" {
		record.TransitTime = dates.DeriveTransit(record.Etd, record.Eta)
	}
	return record, true
}

// splitVesselVoyage divides a combined "EVER GIVEN 001E" field on its last
// whitespace-delimited token.
func splitVesselVoyage(combined string) (vessel, voyage string) {
	fields := strings.Fields(strings.TrimSpace(combined))
	if len(fields) < 2 {
		return strings.TrimSpace(combined), ""
	}
	return strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1]
}

// etdInTargetMonth keeps a sailing when its ETD can be placed inside the
// target year/month. Full dates compare year and month; the short MM-DD form
// can only compare the month. Dates that parse as neither are treated as
// unknown and pass through; emptiness decides validity elsewhere.
func etdInTargetMonth(etd string, year, month int) bool {
	if t, ok := dates.Parse(etd); ok {
		return t.Year() == year && int(t.Month()) == month
	}
	if shortForm.MatchString(strings.TrimSpace(etd)) {
		return dates.MonthOf(etd) == month
	}
	return true
}

var shortForm = regexp.MustCompile(`^\d{2}-\d{2}$`)
