package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesFromText(t *testing.T) {
	text := "SITC Weekly Schedule\n" +
		"\n" +
		"Vessel          Voy     ETD         ETA\n" +
		"SITC HAIPHONG   2608N   2026-03-10  2026-03-13\n" +
		"SITC KEELUNG    2609N   2026-03-17  2026-03-20\n" +
		"\n" +
		"Remarks: subject to change\n"

	tables := TablesFromText(text)
	require.Len(t, tables, 1)
	require.Len(t, tables[0], 3)
	assert.Equal(t, []string{"Vessel", "Voy", "ETD", "ETA"}, tables[0][0])
	assert.Equal(t, "SITC HAIPHONG", tables[0][1][0])
}

func TestTablesFromText_SingleLineBlocksIgnored(t *testing.T) {
	tables := TablesFromText("just a title\n\nanother line\n")
	assert.Empty(t, tables)
}

func TestMapDocumentTables(t *testing.T) {
	tables := [][][]string{
		// No recognizable header: skipped in full.
		{
			{"SITC Weekly Schedule", "March"},
			{"effective", "immediately"},
		},
		{
			{"Vessel", "Voy", "ETD", "ETA"},
			{"SITC HAIPHONG", "2608N", "2026-03-10", "2026-03-13"},
		},
	}
	records := MapDocumentTables(tables, baseOpts())
	require.Len(t, records, 1)
	assert.Equal(t, "SITC HAIPHONG", records[0].Vessel)
	assert.Equal(t, "2026/03/10", records[0].Etd)
}
