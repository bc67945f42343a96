// Package export partitions the merged dataset into named buckets, one per
// carrier + destination + sailing month, and renders them as a workbook.
package export

import (
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"scheduleorganizer/internal/dates"
	"scheduleorganizer/internal/schema"
)

// maxSheetName is the hard limit the export medium places on sheet names.
const maxSheetName = 31

// AllSheetName is the combined view always produced alongside the buckets.
const AllSheetName = "All Schedules"

type Bucket struct {
	Name    string
	Records []schema.ScheduleRecord
}

type Plan struct {
	All     []schema.ScheduleRecord
	Buckets []Bucket
}

// BucketName builds the deterministic sheet name for one carrier, one
// destination and one sailing month, e.g. "EVERGR - KHH - MAR". Carriers are
// truncated to six characters and the whole name to the medium's limit.
func BucketName(carrier, pod string, month int) string {
	c := strings.ToUpper(strings.TrimSpace(carrier))
	if c == "" {
		c = "UNK"
	}
	if len(c) > 6 {
		c = c[:6]
	}
	p := strings.ToUpper(strings.TrimSpace(pod))
	if p == "" {
		p = "UNK"
	}
	name := c + " - " + schema.PortCode(p) + " - " + schema.MonthAbbrev(month)
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}

// BuildPlan assigns every record to exactly one bucket and orders buckets
// lexicographically by name for deterministic output. Records are expected
// already sorted by ETD (the store's All order); that order is kept inside
// each bucket. Distinct carrier/port/month triples that collapse to one
// truncated name are logged, not resolved.
func BuildPlan(records []schema.ScheduleRecord) Plan {
	grouped := make(map[string][]schema.ScheduleRecord)
	triples := make(map[string]map[string]struct{})
	for _, r := range records {
		month := dates.MonthOf(r.Etd)
		name := BucketName(r.Carrier, r.Pod, month)
		grouped[name] = append(grouped[name], r)

		triple := strings.ToUpper(r.Carrier) + "|" + strings.ToUpper(r.Pod) + "|" + schema.MonthAbbrev(month)
		if triples[name] == nil {
			triples[name] = make(map[string]struct{})
		}
		triples[name][triple] = struct{}{}
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
		if len(triples[name]) > 1 {
			log.Warnf("bucket name %q collapses %d distinct carrier/port/month groups", name, len(triples[name]))
		}
	}
	sort.Strings(names)

	plan := Plan{All: records}
	for _, name := range names {
		plan.Buckets = append(plan.Buckets, Bucket{Name: name, Records: grouped[name]})
	}
	return plan
}
