package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduleorganizer/internal/schema"
)

func TestBucketName(t *testing.T) {
	tests := []struct {
		name    string
		carrier string
		pod     string
		month   int
		want    string
	}{
		{name: "carrier truncated to six", carrier: "EVERGREEN", pod: "KAOHSIUNG", month: 3, want: "EVERGR - KHH - MAR"},
		{name: "short carrier kept", carrier: "SITC", pod: "SHANGHAI", month: 12, want: "SITC - SHA - DEC"},
		{name: "unknown port first three letters", carrier: "ONE", pod: "NOWHERE", month: 1, want: "ONE - NOW - JAN"},
		{name: "empty identity", carrier: "", pod: "", month: 5, want: "UNK - UNK - MAY"},
		{name: "out of range month", carrier: "TSL", pod: "TOKYO", month: 0, want: "TSL - TYO - ???"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BucketName(tt.carrier, tt.pod, tt.month)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), maxSheetName)
		})
	}
}

func TestBuildPlan(t *testing.T) {
	records := []schema.ScheduleRecord{
		{Carrier: "EVERGREEN", Pod: "KAOHSIUNG", Vessel: "A", Etd: "2026/03/10"},
		{Carrier: "EVERGREEN", Pod: "KAOHSIUNG", Vessel: "B", Etd: "2026/03/17"},
		{Carrier: "SITC", Pod: "SHANGHAI", Vessel: "C", Etd: "2026/03/12"},
		{Carrier: "SITC", Pod: "SHANGHAI", Vessel: "D", Etd: "2026/04/02"},
	}
	plan := BuildPlan(records)

	assert.Equal(t, records, plan.All)
	require.Len(t, plan.Buckets, 3)

	// Buckets come out lexicographically by name.
	assert.Equal(t, "EVERGR - KHH - MAR", plan.Buckets[0].Name)
	assert.Equal(t, "SITC - SHA - APR", plan.Buckets[1].Name)
	assert.Equal(t, "SITC - SHA - MAR", plan.Buckets[2].Name)

	// Every record lands in exactly one bucket.
	total := 0
	for _, b := range plan.Buckets {
		total += len(b.Records)
	}
	assert.Equal(t, len(records), total)
	assert.Len(t, plan.Buckets[0].Records, 2)
}

func TestBuildPlan_EmptyInput(t *testing.T) {
	plan := BuildPlan(nil)
	assert.Empty(t, plan.All)
	assert.Empty(t, plan.Buckets)
}
