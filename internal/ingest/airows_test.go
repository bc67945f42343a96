package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "json fence", input: "```json\n[{\"a\":1}]\n```", want: "[{\"a\":1}]"},
		{name: "bare fence", input: "```\n[]\n```", want: "[]"},
		{name: "no fence", input: "[]", want: "[]"},
		{name: "surrounding whitespace", input: "  \n```json\n[]\n```\n  ", want: "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.input))
		})
	}
}

func TestDecodeCollaboratorRows(t *testing.T) {
	raw := "```json\n" +
		`[{"vessel": "EVER GIVEN", "voyage": "001E", "etd": "03-10", "transit_time": 2}]` +
		"\n```"
	rows, err := DecodeCollaboratorRows(raw)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "EVER GIVEN", rows[0]["vessel"])
}

func TestDecodeCollaboratorRows_NotAnArray(t *testing.T) {
	_, err := DecodeCollaboratorRows(`{"vessel": "EVER GIVEN"}`)
	assert.Error(t, err)
}

func TestNormalizeAIRows(t *testing.T) {
	rows := []map[string]any{
		{"vessel": "EVER GIVEN", "voyage": "001E", "etd": "03-10", "eta": "03-13", "transit_time": float64(3)},
		{"vessel": "NO DEPARTURE"},
		{"VESSEL": "UPPER ALIAS", "ETD": "03-17"},
	}
	records := NormalizeAIRows(rows, baseOpts())

	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "SITC", first.Carrier)
	assert.Equal(t, "HAIPHONG", first.Pol)
	assert.Equal(t, "KAOHSIUNG", first.Pod)
	assert.Equal(t, "03-10", first.Etd)
	assert.Equal(t, "3 days", first.TransitTime)

	assert.Equal(t, "UPPER ALIAS", records[1].Vessel)
}
