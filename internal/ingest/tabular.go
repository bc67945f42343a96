package ingest

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"scheduleorganizer/internal/columns"
	"scheduleorganizer/internal/cutoff"
	"scheduleorganizer/internal/dates"
	"scheduleorganizer/internal/schema"
)

// MapRows converts a header-plus-data cell matrix into canonical records.
// The first row is the header; rows without a vessel are skipped silently.
func MapRows(rows [][]string, opts Options) []schema.ScheduleRecord {
	if len(rows) < 2 {
		return nil
	}
	return mapDataRows(rows[0], rows[1:], nil, -1, opts)
}

// MapRowsWithRules handles sheets that embed their cut-off policy as a
// reference table: the rule table is built first, then data rows derive
// their cut-offs from it whenever explicit cut-off columns are absent.
func MapRowsWithRules(rows [][]string, opts Options) []schema.ScheduleRecord {
	var rules cutoff.Table
	if region, ok := columns.FindReferenceRegion(rows, opts.ruleMarker()); ok {
		rules = cutoff.BuildTable(region)
	}

	headerIdx := findScheduleHeader(rows)
	if headerIdx < 0 {
		return nil
	}
	header := rows[headerIdx]
	var data [][]string
	for _, row := range rows[headerIdx+1:] {
		if rowBlank(row) || rowMentions(row, opts.ruleMarker()) {
			break
		}
		data = append(data, row)
	}
	return mapDataRows(header, data, rules, serviceColumn(header), opts)
}

func mapDataRows(header []string, data [][]string, rules cutoff.Table, serviceIdx int, opts Options) []schema.ScheduleRecord {
	resolved := columns.Resolve(header)
	var records []schema.ScheduleRecord
	for _, row := range data {
		vessel := columns.Value(row, resolved, columns.FieldVessel, "")
		if vessel == "" || columns.IsHeaderEcho(vessel) {
			continue
		}

		etdRaw := columns.Value(row, resolved, columns.FieldEtd, "")
		_, etdNotes := dates.StripBrackets(etdRaw)
		etaRaw := columns.Value(row, resolved, columns.FieldEta, "")
		_, etaNotes := dates.StripBrackets(etaRaw)

		record := schema.ScheduleRecord{
			Carrier:     opts.Carrier,
			Pol:         columns.Value(row, resolved, columns.FieldPol, opts.Pol),
			Pod:         columns.Value(row, resolved, columns.FieldPod, opts.Pod),
			Vessel:      vessel,
			Voyage:      columns.Value(row, resolved, columns.FieldVoyage, ""),
			Etd:         dates.Normalize(etdRaw),
			Eta:         dates.Normalize(etaRaw),
			TransitTime: columns.Value(row, resolved, columns.FieldTransitTime, ""),
			CyCutoff:    dates.Normalize(columns.Value(row, resolved, columns.FieldCyCutoff, "")),
			SiCutoff:    dates.Normalize(columns.Value(row, resolved, columns.FieldSiCutoff, "")),
		}

		if record.TransitTime == "" {
			record.TransitTime = transitFromNotes(etdNotes, etaNotes)
		}
		record.TransitTime = dates.NormalizeTransit(record.TransitTime)
		if record.TransitTime == "" {
			record.TransitTime = dates.DeriveTransit(record.Etd, record.Eta)
		}

		etd, etdParsed := dates.Parse(record.Etd)
		if etdParsed && !opts.withinWindow(etd) {
			continue
		}
		if !opts.acceptsPod(record.Pod) || !opts.acceptsPol(record.Pol) {
			continue
		}

		if rules != nil && etdParsed && record.CyCutoff == "" && record.SiCutoff == "" {
			service := ""
			if serviceIdx >= 0 && serviceIdx < len(row) {
				service = row[serviceIdx]
			}
			record.CyCutoff, record.SiCutoff = rules.Compute(service, etd)
		}

		records = append(records, record)
	}
	log.Debugf("tabular adapter mapped %d records from %d data rows", len(records), len(data))
	return records
}

// transitFromNotes recovers a transit value from a parenthetical annotation
// stripped off a date cell, e.g. "(2 days)" or "(T/T 3)".
func transitFromNotes(noteGroups ...[]string) string {
	for _, notes := range noteGroups {
		for _, note := range notes {
			upper := strings.ToUpper(note)
			if strings.Contains(upper, "DAY") || strings.Contains(upper, "T/T") {
				return strings.TrimSpace(note)
			}
		}
	}
	return ""
}

// findScheduleHeader returns the first row that looks like a schedule header.
func findScheduleHeader(rows [][]string) int {
	for i, row := range rows {
		for _, cell := range row {
			upper := strings.ToUpper(cell)
			if strings.Contains(upper, "VESSEL") || strings.Contains(upper, "VOYAGE") ||
				strings.Contains(upper, "DEPARTURE") {
				return i
			}
		}
	}
	return -1
}

func serviceColumn(header []string) int {
	for i, cell := range header {
		if strings.Contains(strings.ToUpper(cell), "SERVICE") {
			return i
		}
	}
	return -1
}

func rowBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func rowMentions(row []string, marker string) bool {
	for _, cell := range row {
		if strings.Contains(strings.ToUpper(cell), strings.ToUpper(marker)) {
			return true
		}
	}
	return false
}
