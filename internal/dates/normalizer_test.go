package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_FormatPriority(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already canonical", input: "2026/03/14", want: "2026/03/14"},
		{name: "iso dashes", input: "2026-03-14", want: "2026/03/14"},
		{name: "day first slashes", input: "14/03/2026", want: "2026/03/14"},
		{name: "day first dashes", input: "14-03-2026", want: "2026/03/14"},
		{name: "short collaborator form passes through", input: "03-14", want: "03-14"},
		{name: "unparseable text survives unchanged", input: "TBA", want: "TBA"},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_AmbiguousDayFirst(t *testing.T) {
	// 03/04/2026 is ambiguous; the day-first layout is tried before
	// month-first, so this is the third of April.
	assert.Equal(t, "2026/04/03", Normalize("03/04/2026"))
}

func TestNormalize_NonStringInputs(t *testing.T) {
	t.Run("time value", func(t *testing.T) {
		v := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, "2026/03/14", Normalize(v))
	})
	t.Run("zero time", func(t *testing.T) {
		assert.Equal(t, "", Normalize(time.Time{}))
	})
	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, "", Normalize(nil))
	})
}

func TestStripBrackets(t *testing.T) {
	t.Run("ascii brackets", func(t *testing.T) {
		clean, notes := StripBrackets("2026/03/10 (2 days)")
		assert.Equal(t, "2026/03/10", clean)
		assert.Equal(t, []string{"2 days"}, notes)
	})
	t.Run("fullwidth brackets", func(t *testing.T) {
		clean, notes := StripBrackets("2026/03/10（T/T 3）")
		assert.Equal(t, "2026/03/10", clean)
		assert.Equal(t, []string{"T/T 3"}, notes)
	})
	t.Run("no brackets", func(t *testing.T) {
		clean, notes := StripBrackets("2026/03/10")
		assert.Equal(t, "2026/03/10", clean)
		assert.Empty(t, notes)
	})
}

func TestNormalize_BracketedDateStillParses(t *testing.T) {
	assert.Equal(t, "2026/03/10", Normalize("2026-03-10 (2 days)"))
}

func TestMonthOf(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "short form", input: "03-14", want: 3},
		{name: "full canonical", input: "2026/03/10", want: 3},
		{name: "full iso", input: "2026-12-01", want: 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthOf(tt.input))
		})
	}

	t.Run("unparseable defaults to current month", func(t *testing.T) {
		assert.Equal(t, int(time.Now().Month()), MonthOf("TBA"))
	})
}

func TestNormalizeTransit(t *testing.T) {
	assert.Equal(t, "2 days", NormalizeTransit("2"))
	assert.Equal(t, "2 days", NormalizeTransit("2 days"))
	assert.Equal(t, "", NormalizeTransit(""))
	assert.Equal(t, "T/T 3", NormalizeTransit("T/T 3"))
}

func TestDeriveTransit(t *testing.T) {
	t.Run("both endpoints parse", func(t *testing.T) {
		assert.Equal(t, "4 days", DeriveTransit("2026/03/10", "2026/03/14"))
	})
	t.Run("negative span stays blank", func(t *testing.T) {
		assert.Equal(t, "", DeriveTransit("2026/03/14", "2026/03/10"))
	})
	t.Run("short form cannot derive", func(t *testing.T) {
		assert.Equal(t, "", DeriveTransit("03-10", "03-14"))
	})
}
