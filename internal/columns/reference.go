package columns

import (
	"strings"
)

// ReferenceRegion is a reference table located inside a larger sheet: a local
// header row followed by contiguous data rows.
type ReferenceRegion struct {
	Header []string
	Rows   [][]string
}

// FindReferenceRegion scans every row of a sheet for one containing the
// section marker (e.g. a "SERVICE" label for the cut-off rule table). The
// marker row becomes the local header and the following contiguous non-empty
// rows are the region's data, ending at the first fully-empty row.
func FindReferenceRegion(rows [][]string, marker string) (ReferenceRegion, bool) {
	marker = strings.ToUpper(marker)
	for i, row := range rows {
		if !rowContains(row, marker) {
			continue
		}
		region := ReferenceRegion{Header: row}
		for _, data := range rows[i+1:] {
			if rowEmpty(data) {
				break
			}
			region.Rows = append(region.Rows, data)
		}
		return region, true
	}
	return ReferenceRegion{}, false
}

func rowContains(row []string, marker string) bool {
	for _, cell := range row {
		if strings.Contains(strings.ToUpper(cell), marker) {
			return true
		}
	}
	return false
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
