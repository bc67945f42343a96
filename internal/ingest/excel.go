package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	log "github.com/sirupsen/logrus"

	"scheduleorganizer/internal/schema"
)

// ParseExcel loads the first sheet of an xlsx upload and runs the tabular
// mapping over it. Sheets carrying an embedded cut-off reference table are
// detected by the rule marker and routed through the rule-aware mapping.
func ParseExcel(fileBytes []byte, opts Options) ([]schema.ScheduleRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(fileBytes))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return mapSheet(rows, opts), nil
}

// ParseCSV reads a delimited upload into the same tabular mapping.
func ParseCSV(fileBytes []byte, opts Options) ([]schema.ScheduleRecord, error) {
	reader := csv.NewReader(bytes.NewReader(fileBytes))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return mapSheet(rows, opts), nil
}

func mapSheet(rows [][]string, opts Options) []schema.ScheduleRecord {
	if sheetHasMarker(rows, opts.ruleMarker()) {
		log.Debugf("sheet carries a %q reference table, deriving cut-offs", opts.ruleMarker())
		return MapRowsWithRules(rows, opts)
	}
	return MapRows(rows, opts)
}

func sheetHasMarker(rows [][]string, marker string) bool {
	marker = strings.ToUpper(marker)
	for _, row := range rows {
		for _, cell := range row {
			if strings.Contains(strings.ToUpper(cell), marker) {
				return true
			}
		}
	}
	return false
}
