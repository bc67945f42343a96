package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnownCarrier(t *testing.T) {
	assert.True(t, IsKnownCarrier("SITC"))
	assert.True(t, IsKnownCarrier(" sitc "))
	assert.False(t, IsKnownCarrier("MAERSK"))
}

func TestPortCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "exact", input: "KAOHSIUNG", want: "KHH"},
		{name: "case and spacing", input: "  kaohsiung ", want: "KHH"},
		{name: "substring in longer name", input: "KAOHSIUNG PORT", want: "KHH"},
		{name: "prefix of known name", input: "KAOHSI", want: "KHH"},
		{name: "unknown falls back to first three", input: "NOWHERE", want: "NOW"},
		{name: "short unknown stays whole", input: "XY", want: "XY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PortCode(tt.input))
		})
	}
}

func TestPortCode_AmbiguousNameIsDeterministic(t *testing.T) {
	// "AN" is contained in several known port names; the containment pass
	// walks CommonPorts in declaration order, so the first match (DA NANG)
	// wins every time. Sheet names derive from this code, so a wobble here
	// would rename export sheets between runs.
	first := PortCode("AN")
	assert.Equal(t, "DAD", first)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, PortCode("AN"))
	}
}

func TestMonthAbbrev(t *testing.T) {
	assert.Equal(t, "JAN", MonthAbbrev(1))
	assert.Equal(t, "DEC", MonthAbbrev(12))
	assert.Equal(t, "???", MonthAbbrev(0))
	assert.Equal(t, "???", MonthAbbrev(13))
}

func TestDisplayPortName(t *testing.T) {
	assert.Equal(t, "Ho Chi Minh City", DisplayPortName("HO CHI MINH CITY"))
	assert.Equal(t, "Kaohsiung", DisplayPortName(" kaohsiung "))
}
