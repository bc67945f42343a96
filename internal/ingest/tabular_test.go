package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseOpts() Options {
	return Options{Carrier: "SITC", Pol: "HAIPHONG", Pod: "KAOHSIUNG"}
}

func TestMapRows(t *testing.T) {
	rows := [][]string{
		{"Vessel", "Voy", "ETD", "ETA", "T/T", "CY Cut-off", "SI Cut-off"},
		{"SITC HAIPHONG", "2608N", "2026-03-10", "2026-03-13", "3", "2026-03-08", "2026-03-07"},
		{"", "", "", "", "", "", ""},
		{"SITC KEELUNG", "2609N", "2026-03-17", "2026-03-20", "", "", ""},
	}
	records := MapRows(rows, baseOpts())

	require.Len(t, records, 2)
	first := records[0]
	assert.Equal(t, "SITC", first.Carrier)
	assert.Equal(t, "HAIPHONG", first.Pol)
	assert.Equal(t, "KAOHSIUNG", first.Pod)
	assert.Equal(t, "SITC HAIPHONG", first.Vessel)
	assert.Equal(t, "2026/03/10", first.Etd)
	assert.Equal(t, "2026/03/13", first.Eta)
	assert.Equal(t, "3 days", first.TransitTime)
	assert.Equal(t, "2026/03/08", first.CyCutoff)

	// The second sailing has no explicit transit; it is derived from the
	// ETD/ETA span.
	assert.Equal(t, "3 days", records[1].TransitTime)
}

func TestMapRows_HeaderEchoSkipped(t *testing.T) {
	rows := [][]string{
		{"Vessel", "ETD"},
		{"VESSEL", "ETD"},
		{"SITC HAIPHONG", "2026/03/10"},
	}
	records := MapRows(rows, baseOpts())
	require.Len(t, records, 1)
	assert.Equal(t, "SITC HAIPHONG", records[0].Vessel)
}

func TestMapRows_TransitNoteInDateCell(t *testing.T) {
	rows := [][]string{
		{"Vessel", "ETD", "ETA"},
		{"SITC HAIPHONG", "2026/03/10 (2 days)", "2026/03/12"},
	}
	records := MapRows(rows, baseOpts())
	require.Len(t, records, 1)
	assert.Equal(t, "2026/03/10", records[0].Etd)
	assert.Equal(t, "2 days", records[0].TransitTime)
}

func TestMapRows_WindowFilter(t *testing.T) {
	opts := baseOpts()
	opts.Start = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	opts.End = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	rows := [][]string{
		{"Vessel", "ETD"},
		{"IN WINDOW", "2026/03/10"},
		{"TOO LATE", "2026/03/20"},
	}
	records := MapRows(rows, opts)
	require.Len(t, records, 1)
	assert.Equal(t, "IN WINDOW", records[0].Vessel)
}

func TestMapRows_PodAndPolFilters(t *testing.T) {
	opts := baseOpts()
	opts.AcceptedPods = []string{"KAOHSIUNG", "KEELUNG"}
	opts.PolToken = "HAIPHONG"

	rows := [][]string{
		{"Vessel", "POL", "POD", "ETD"},
		{"KEEP", "HAIPHONG PORT", "Keelung", "2026/03/10"},
		{"WRONG POD", "HAIPHONG PORT", "MANILA", "2026/03/10"},
		{"WRONG POL", "SHANGHAI", "KEELUNG", "2026/03/10"},
	}
	records := MapRows(rows, opts)
	require.Len(t, records, 1)
	assert.Equal(t, "KEEP", records[0].Vessel)
}

func TestMapRowsWithRules(t *testing.T) {
	rows := [][]string{
		{"SERVICE", "ETD", "CY CUT", "SI CUT"},
		{"JTH", "SAT", "FRI 12:00", "THU 16:00"},
		{"", "", "", ""},
		{"Service", "Vessel", "Voy", "ETD"},
		// 2026/03/14 is a Saturday, so JTH cuts off Friday the 13th.
		{"JTH", "SITC HAIPHONG", "2608N", "2026/03/14"},
		{"XXX", "SITC KEELUNG", "2609N", "2026/03/15"},
	}
	records := MapRowsWithRules(rows, baseOpts())

	require.Len(t, records, 2)
	assert.Equal(t, "2026/03/13 12:00", records[0].CyCutoff)
	assert.Equal(t, "2026/03/12 16:00", records[0].SiCutoff)

	// Unknown service: cut-offs stay empty rather than guessed.
	assert.Empty(t, records[1].CyCutoff)
	assert.Empty(t, records[1].SiCutoff)
}

func TestMapRowsWithRules_ExplicitCutoffsWin(t *testing.T) {
	rows := [][]string{
		{"SERVICE", "ETD", "CY CUT", "SI CUT"},
		{"JTH", "SAT", "FRI 12:00", "THU 16:00"},
		{"", "", "", ""},
		{"Service", "Vessel", "ETD", "CY Cut-off", "SI Cut-off"},
		{"JTH", "SITC HAIPHONG", "2026/03/14", "2026/03/12", "2026/03/11"},
	}
	records := MapRowsWithRules(rows, baseOpts())

	require.Len(t, records, 1)
	assert.Equal(t, "2026/03/12", records[0].CyCutoff)
	assert.Equal(t, "2026/03/11", records[0].SiCutoff)
}
