package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_TypicalHeader(t *testing.T) {
	header := []string{"Vessel Name", "Voy", "ETD Haiphong", "ETA Kaohsiung", "T/T", "CY Cut-off", "SI Cut-off", "POL", "POD"}
	resolved := Resolve(header)

	assert.Equal(t, 0, resolved[FieldVessel])
	assert.Equal(t, 1, resolved[FieldVoyage])
	assert.Equal(t, 2, resolved[FieldEtd])
	assert.Equal(t, 3, resolved[FieldEta])
	assert.Equal(t, 4, resolved[FieldTransitTime])
	assert.Equal(t, 5, resolved[FieldCyCutoff])
	assert.Equal(t, 6, resolved[FieldSiCutoff])
	assert.Equal(t, 7, resolved[FieldPol])
	assert.Equal(t, 8, resolved[FieldPod])
}

func TestResolve_CyClaimsBeforeSi(t *testing.T) {
	// The CY rule runs before the SI rule, so "CY Cut-off Date" is claimed
	// as cy_cutoff and the genuine SI column is left for the si rule.
	header := []string{"Vessel", "CY Cut-off Date", "SI/VGM Cut-off"}
	resolved := Resolve(header)

	assert.Equal(t, 1, resolved[FieldCyCutoff])
	assert.Equal(t, 2, resolved[FieldSiCutoff])
}

func TestResolve_ClaimedHeaderNotReused(t *testing.T) {
	// A single "Vessel/Voyage" column goes to the vessel rule; voyage stays
	// unresolved rather than re-reading the same column.
	header := []string{"Vessel/Voyage", "ETD"}
	resolved := Resolve(header)

	assert.Equal(t, 0, resolved[FieldVessel])
	_, ok := resolved[FieldVoyage]
	assert.False(t, ok)
}

func TestResolve_DepartureArrivalSynonyms(t *testing.T) {
	header := []string{"Ship", "Departure Date", "Arrival Date", "Transit"}
	resolved := Resolve(header)

	assert.Equal(t, 0, resolved[FieldVessel])
	assert.Equal(t, 1, resolved[FieldEtd])
	assert.Equal(t, 2, resolved[FieldEta])
	assert.Equal(t, 3, resolved[FieldTransitTime])
}

func TestValue(t *testing.T) {
	resolved := Resolve([]string{"Vessel", "ETD"})
	row := []string{"EVER GIVEN", "2026/03/10"}

	assert.Equal(t, "EVER GIVEN", Value(row, resolved, FieldVessel, ""))
	assert.Equal(t, "HAIPHONG", Value(row, resolved, FieldPol, "HAIPHONG"))

	t.Run("short row falls back to default", func(t *testing.T) {
		assert.Equal(t, "x", Value([]string{"EVER GIVEN"}, resolved, FieldEtd, "x"))
	})
	t.Run("blank cell falls back to default", func(t *testing.T) {
		assert.Equal(t, "x", Value([]string{"EVER GIVEN", "  "}, resolved, FieldEtd, "x"))
	})
}

func TestIsHeaderEcho(t *testing.T) {
	assert.True(t, IsHeaderEcho("VESSEL"))
	assert.True(t, IsHeaderEcho(" vessel "))
	assert.False(t, IsHeaderEcho("EVER GIVEN"))
}

func TestFindReferenceRegion(t *testing.T) {
	rows := [][]string{
		{"Some title"},
		{"SERVICE", "ETD", "CY CUT", "SI CUT"},
		{"JTH", "SAT", "FRI 12:00", "THU 16:00"},
		{"JTK", "SUN", "SAT 12:00", "FRI 16:00"},
		{"", "", "", ""},
		{"Vessel", "Voy", "ETD"},
	}
	region, ok := FindReferenceRegion(rows, "SERVICE")
	assert.True(t, ok)
	assert.Equal(t, rows[1], region.Header)
	assert.Len(t, region.Rows, 2)

	_, ok = FindReferenceRegion(rows, "NOPE")
	assert.False(t, ok)
}
