package ingest

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/dslipak/pdf"
	log "github.com/sirupsen/logrus"

	"scheduleorganizer/internal/schema"
)

// ExtractPDFText pulls the plain text of every page of a PDF upload.
func ExtractPDFText(fileBytes []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	var buf bytes.Buffer
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

var cellSplit = regexp.MustCompile(`\s{2,}|\t`)

// TablesFromText reconstructs cell matrices from page text: consecutive
// non-empty lines whose cells are separated by runs of whitespace form one
// table, blank lines separate tables.
func TablesFromText(text string) [][][]string {
	var tables [][][]string
	var current [][]string
	flush := func() {
		if len(current) > 1 {
			tables = append(tables, current)
		}
		current = nil
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cells := cellSplit.Split(strings.TrimSpace(line), -1)
		current = append(current, cells)
	}
	flush()
	return tables
}

// MapDocumentTables maps extracted page tables into records. Each table's
// header row is located by keyword presence; tables without a recognizable
// header are skipped.
func MapDocumentTables(tables [][][]string, opts Options) []schema.ScheduleRecord {
	var records []schema.ScheduleRecord
	for _, table := range tables {
		headerIdx := findScheduleHeader(table)
		if headerIdx < 0 || headerIdx == len(table)-1 {
			continue
		}
		records = append(records, mapDataRows(table[headerIdx], table[headerIdx+1:], nil, -1, opts)...)
	}
	log.Debugf("document adapter mapped %d records from %d tables", len(records), len(tables))
	return records
}
