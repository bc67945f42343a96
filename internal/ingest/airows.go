package ingest

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	"scheduleorganizer/internal/dates"
	"scheduleorganizer/internal/schema"
)

var codeFence = regexp.MustCompile("(?m)^```json\\s*|^```\\s*|```$")

// StripCodeFence removes the markdown fences extraction collaborators like
// to wrap their JSON in.
func StripCodeFence(raw string) string {
	return strings.TrimSpace(codeFence.ReplaceAllString(strings.TrimSpace(raw), ""))
}

// DecodeCollaboratorRows parses a collaborator response into loosely-typed
// rows. A response that is not a JSON array yields an error the caller
// surfaces as a recoverable warning, never a fatal condition.
func DecodeCollaboratorRows(raw string) ([]map[string]any, error) {
	cleaned := StripCodeFence(raw)
	var rows []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &rows); err != nil {
		return nil, fmt.Errorf("collaborator response is not a JSON array: %w", err)
	}
	return rows, nil
}

// NormalizeAIRows folds collaborator rows into canonical records via the
// field-aliasing rule, filling caller defaults for identity columns and
// discarding entries that lack an ETD.
func NormalizeAIRows(rows []map[string]any, opts Options) []schema.ScheduleRecord {
	var records []schema.ScheduleRecord
	for _, row := range rows {
		record := schema.FromAliases(row)
		if record.Etd == "" {
			continue
		}
		if record.Carrier == "" {
			record.Carrier = opts.Carrier
		}
		if record.Pol == "" {
			record.Pol = opts.Pol
		}
		if record.Pod == "" {
			record.Pod = opts.Pod
		}
		record.TransitTime = dates.NormalizeTransit(record.TransitTime)
		records = append(records, record)
	}
	log.Debugf("ai adapter normalized %d of %d collaborator rows", len(records), len(rows))
	return records
}
