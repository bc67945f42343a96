package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scheduleTableHTML = `<html><body>
<table>
  <tr><th>Vessel</th><th>Voy</th><th>ETD</th><th>ETA</th></tr>
  <tr><td>SITC HAIPHONG</td><td>2608N</td><td>2026-03-10</td><td>2026-03-13</td></tr>
  <tr><td>SITC KEELUNG</td><td>2609N</td><td>2026-04-02</td><td>2026-04-05</td></tr>
</table>
<table>
  <tr><th>Vessel</th><th>Voy</th><th>ETD</th><th>ETA</th></tr>
  <tr><td>SITC HAIPHONG</td><td>2608N</td><td>2026-03-10</td><td>2026-03-13</td></tr>
</table>
</body></html>`

func TestParseScrapedTables(t *testing.T) {
	records, err := ParseScrapedTables(scheduleTableHTML, baseOpts(), 2026, 3)
	require.NoError(t, err)

	// The April sailing is outside the target month and the repeated sailing
	// in the second table is deduplicated.
	require.Len(t, records, 1)
	assert.Equal(t, "SITC HAIPHONG", records[0].Vessel)
	assert.Equal(t, "2026/03/10", records[0].Etd)
}

func TestParseScrapedTables_NoTables(t *testing.T) {
	records, err := ParseScrapedTables("<html><body><p>maintenance</p></body></html>", baseOpts(), 2026, 3)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseDetailText(t *testing.T) {
	text := `Vessel / Voyage: EVER GIVEN 001E
Departure Date: 2026-03-10
Arrival Date: 2026-03-13
Total Transit Time: 3
CY Closing: 2026-03-08
Document Closing: 2026-03-07`

	record, ok := ParseDetailText(text, baseOpts(), 2026, 3)
	require.True(t, ok)
	assert.Equal(t, "EVER GIVEN", record.Vessel)
	assert.Equal(t, "001E", record.Voyage)
	assert.Equal(t, "2026/03/10", record.Etd)
	assert.Equal(t, "2026/03/13", record.Eta)
	assert.Equal(t, "3 days", record.TransitTime)
	assert.Equal(t, "2026/03/08", record.CyCutoff)
	assert.Equal(t, "2026/03/07", record.SiCutoff)
}

func TestParseDetailText_WrongMonth(t *testing.T) {
	text := "Vessel: EVER GIVEN 001E\nDeparture Date: 2026-04-10"
	_, ok := ParseDetailText(text, baseOpts(), 2026, 3)
	assert.False(t, ok)
}

func TestParseDetailText_MissingTransitDerived(t *testing.T) {
	text := "Vessel: EVER GIVEN 001E\nDeparture Date: 2026-03-10\nArrival Date: 2026-03-13"
	record, ok := ParseDetailText(text, baseOpts(), 2026, 3)
	require.True(t, ok)
	assert.Equal(t, "3 days", record.TransitTime)
}

func TestSplitVesselVoyage(t *testing.T) {
	tests := []struct {
		input      string
		wantVessel string
		wantVoyage string
	}{
		{input: "EVER GIVEN 001E", wantVessel: "EVER GIVEN", wantVoyage: "001E"},
		{input: "SINGLETON", wantVessel: "SINGLETON", wantVoyage: ""},
		{input: "  A B C  ", wantVessel: "A B", wantVoyage: "C"},
	}
	for _, tt := range tests {
		vessel, voyage := splitVesselVoyage(tt.input)
		assert.Equal(t, tt.wantVessel, vessel)
		assert.Equal(t, tt.wantVoyage, voyage)
	}
}
