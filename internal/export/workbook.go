package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"scheduleorganizer/internal/schema"
)

var columnWidths = map[string]float64{
	"CARRIER": 10, "POL": 14, "POD": 14, "Vessel": 22, "Voyage": 9,
	"ETD": 8, "ETA": 8, "T/T Time": 7, "CY Cut-off": 11, "SI Cut-off": 11,
}

type sheetStyles struct {
	header  int
	data    int
	evenRow int
}

// WriteWorkbook renders a plan as an xlsx workbook: the combined view first,
// then one sheet per bucket in plan order.
func WriteWorkbook(plan Plan) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := buildStyles(f)
	if err != nil {
		return nil, fmt.Errorf("workbook styles: %w", err)
	}

	if err := f.SetSheetName("Sheet1", AllSheetName); err != nil {
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}
	if err := writeSheet(f, AllSheetName, plan.All, styles); err != nil {
		return nil, err
	}
	for _, bucket := range plan.Buckets {
		if _, err := f.NewSheet(bucket.Name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", bucket.Name, err)
		}
		if err := writeSheet(f, bucket.Name, bucket.Records, styles); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func buildStyles(f *excelize.File) (sheetStyles, error) {
	thin := []excelize.Border{
		{Type: "left", Style: 1, Color: "AAAAAA"},
		{Type: "right", Style: 1, Color: "AAAAAA"},
		{Type: "top", Style: 1, Color: "AAAAAA"},
		{Type: "bottom", Style: 1, Color: "AAAAAA"},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	header, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F4E79"}},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11, Family: "Calibri"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thin,
	})
	if err != nil {
		return sheetStyles{}, err
	}
	data, err := f.NewStyle(&excelize.Style{Alignment: center, Border: thin})
	if err != nil {
		return sheetStyles{}, err
	}
	evenRow, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"EBF3FB"}},
		Alignment: center,
		Border:    thin,
	})
	if err != nil {
		return sheetStyles{}, err
	}
	return sheetStyles{header: header, data: data, evenRow: evenRow}, nil
}

func writeSheet(f *excelize.File, sheet string, records []schema.ScheduleRecord, styles sheetStyles) error {
	for ci, col := range schema.ExportColumns {
		cell, err := excelize.CoordinatesToCellName(ci+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.header); err != nil {
			return err
		}
		colName, err := excelize.ColumnNumberToName(ci + 1)
		if err != nil {
			return err
		}
		width := columnWidths[col]
		if width == 0 {
			width = 12
		}
		if err := f.SetColWidth(sheet, colName, colName, width); err != nil {
			return err
		}
	}
	if err := f.SetRowHeight(sheet, 1, 28); err != nil {
		return err
	}

	for ri, record := range records {
		style := styles.data
		if (ri+2)%2 == 0 {
			style = styles.evenRow
		}
		for ci, value := range record.ExportRow() {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
