package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, (&ScheduleRecord{Vessel: "EVER GIVEN"}).IsValid())
	assert.False(t, (&ScheduleRecord{Vessel: "  "}).IsValid())
	assert.False(t, (&ScheduleRecord{Etd: "2026/03/10"}).IsValid())
}

func TestNaturalKey(t *testing.T) {
	a := ScheduleRecord{Carrier: "SITC", Pol: "HAIPHONG", Pod: "KAOHSIUNG", Vessel: "V", Voyage: "1", Etd: "2026/03/10"}
	b := a
	assert.Equal(t, a.NaturalKey(), b.NaturalKey())

	b.Voyage = "2"
	assert.NotEqual(t, a.NaturalKey(), b.NaturalKey())

	// Cut-offs do not participate in identity.
	c := a
	c.CyCutoff = "2026/03/08"
	assert.Equal(t, a.NaturalKey(), c.NaturalKey())
}

func TestExportRow_MatchesColumnOrder(t *testing.T) {
	r := ScheduleRecord{
		Carrier: "SITC", Pol: "HAIPHONG", Pod: "KAOHSIUNG",
		Vessel: "V", Voyage: "1", Etd: "2026/03/10", Eta: "2026/03/13",
		TransitTime: "3 days", CyCutoff: "2026/03/08", SiCutoff: "2026/03/07",
	}
	row := r.ExportRow()
	require.Len(t, row, len(ExportColumns))
	assert.Equal(t, "SITC", row[0])
	assert.Equal(t, "2026/03/07", row[len(row)-1])
}

func TestFromAliases(t *testing.T) {
	t.Run("lowercase collaborator keys", func(t *testing.T) {
		r := FromAliases(map[string]any{
			"carrier": "SITC", "pol": "HAIPHONG", "pod": "KAOHSIUNG",
			"vessel": "SITC HAIPHONG", "voyage": "2608N",
			"etd": "03-10", "eta": "03-13",
			"transit_time": float64(3), "cy_cutoff": "03-08", "si_cutoff": "03-07",
		})
		assert.Equal(t, "SITC HAIPHONG", r.Vessel)
		assert.Equal(t, "3", r.TransitTime)
		assert.Equal(t, "03-08", r.CyCutoff)
	})

	t.Run("display-name keys", func(t *testing.T) {
		r := FromAliases(map[string]any{
			"Vessel": "EVER GIVEN", "Voyage": "001E", "ETD": "03-10", "T/T Time": "2",
		})
		assert.Equal(t, "EVER GIVEN", r.Vessel)
		assert.Equal(t, "001E", r.Voyage)
		assert.Equal(t, "03-10", r.Etd)
		assert.Equal(t, "2", r.TransitTime)
	})

	t.Run("first non-empty candidate wins", func(t *testing.T) {
		r := FromAliases(map[string]any{"vessel": "", "ship": "BACKUP"})
		assert.Equal(t, "BACKUP", r.Vessel)
	})

	t.Run("unsupported value types drop to empty", func(t *testing.T) {
		r := FromAliases(map[string]any{"vessel": []string{"nope"}})
		assert.Empty(t, r.Vessel)
	})
}
