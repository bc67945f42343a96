package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"scheduleorganizer/internal/schema"
)

func TestWriteWorkbook(t *testing.T) {
	records := []schema.ScheduleRecord{
		{Carrier: "EVERGREEN", Pol: "HAIPHONG", Pod: "KAOHSIUNG", Vessel: "EVER GIVEN", Voyage: "001E", Etd: "2026/03/10", Eta: "2026/03/13", TransitTime: "3 days"},
		{Carrier: "SITC", Pol: "HAIPHONG", Pod: "SHANGHAI", Vessel: "SITC HAIPHONG", Voyage: "2608N", Etd: "2026/03/12"},
	}
	plan := BuildPlan(records)

	data, err := WriteWorkbook(plan)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 3)
	assert.Equal(t, AllSheetName, sheets[0])
	assert.Contains(t, sheets, "EVERGR - KHH - MAR")
	assert.Contains(t, sheets, "SITC - SHA - MAR")

	rows, err := f.GetRows(AllSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, schema.ExportColumns, rows[0])
	assert.Equal(t, "EVER GIVEN", rows[1][3])

	bucketRows, err := f.GetRows("SITC - SHA - MAR")
	require.NoError(t, err)
	require.Len(t, bucketRows, 2)
	assert.Equal(t, "SITC HAIPHONG", bucketRows[1][3])
}
