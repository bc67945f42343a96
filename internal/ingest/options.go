// Package ingest turns raw schedule sources of every shape into canonical
// records. Adapters absorb per-row and per-source failures locally: a bad
// source yields zero records and a warning, never a pipeline halt.
package ingest

import (
	"strings"
	"time"

	"scheduleorganizer/internal/schema"
)

// Options is the caller context shared by all adapters: default identifiers
// for columns the source omits, plus the acceptance filters.
type Options struct {
	Carrier string
	Pol     string
	Pod     string

	// AcceptedPods restricts destinations to a known set; empty disables.
	AcceptedPods []string
	// PolToken keeps only rows whose origin contains this token; empty disables.
	PolToken string

	// Start/End bound the parsed ETD inclusively; zero values disable.
	Start time.Time
	End   time.Time

	// RuleMarker locates an embedded cut-off reference table. Defaults to
	// the "SERVICE" section label.
	RuleMarker string
}

func (o Options) ruleMarker() string {
	if o.RuleMarker == "" {
		return "SERVICE"
	}
	return o.RuleMarker
}

func (o Options) acceptsPod(pod string) bool {
	if len(o.AcceptedPods) == 0 {
		return true
	}
	n := strings.ToUpper(strings.TrimSpace(pod))
	for _, accepted := range o.AcceptedPods {
		if n == strings.ToUpper(accepted) {
			return true
		}
	}
	return false
}

func (o Options) acceptsPol(pol string) bool {
	if o.PolToken == "" {
		return true
	}
	return strings.Contains(strings.ToUpper(pol), strings.ToUpper(o.PolToken))
}

func (o Options) withinWindow(etd time.Time) bool {
	if o.Start.IsZero() || o.End.IsZero() {
		return true
	}
	return !etd.Before(o.Start) && !etd.After(o.End)
}

// sessionDedup suppresses duplicate sailings within one adapter call using
// the same natural key the merge store uses.
type sessionDedup map[string]struct{}

func (d sessionDedup) seen(r *schema.ScheduleRecord) bool {
	key := r.NaturalKey()
	if _, ok := d[key]; ok {
		return true
	}
	d[key] = struct{}{}
	return false
}
