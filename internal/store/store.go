// Package store accumulates canonical schedule records across ingestion
// calls for one logical session. The store is shared mutable state behind an
// HTTP surface, so the add-then-dedup read-modify-write is guarded by a
// single mutex.
package store

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"sort"
	"sync"

	"scheduleorganizer/internal/schema"
)

type ScheduleStore struct {
	mu      sync.Mutex
	records []schema.ScheduleRecord
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{}
}

// Add appends a batch and re-applies the natural-key dedup rule across the
// entire combined set. A new record always overwrites an existing one
// sharing its key, regardless of position within the batch. Records without
// a vessel never enter the set.
func (s *ScheduleStore) Add(records []schema.ScheduleRecord) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	combined := append([]schema.ScheduleRecord{}, s.records...)
	for _, r := range records {
		if r.IsValid() {
			combined = append(combined, r)
		}
	}
	index := make(map[string]int, len(combined))
	deduped := combined[:0]
	for _, r := range combined {
		key := r.NaturalKey()
		if at, seen := index[key]; seen {
			deduped[at] = r
			continue
		}
		index[key] = len(deduped)
		deduped = append(deduped, r)
	}
	s.records = deduped
	return len(s.records)
}

// All returns the merged set sorted ascending by ETD, with empty ETDs last.
func (s *ScheduleStore) All() []schema.ScheduleRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]schema.ScheduleRecord, len(s.records))
	copy(out, s.records)
	sortByEtd(out)
	return out
}

// Len reports the current record count.
func (s *ScheduleStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Clear empties the store back to zero records.
func (s *ScheduleStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}

// Snapshot serializes the sorted dataset; Fingerprint keys the export cache
// so an unchanged dataset reuses the previously built workbook.
func (s *ScheduleStore) Snapshot() ([]byte, error) {
	return json.Marshal(s.All())
}

func (s *ScheduleStore) Fingerprint() string {
	snapshot, err := s.Snapshot()
	if err != nil {
		return ""
	}
	sum := md5.Sum(snapshot)
	return hex.EncodeToString(sum[:])
}

func sortByEtd(records []schema.ScheduleRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].Etd, records[j].Etd
		if (a == "") != (b == "") {
			return b == ""
		}
		return a < b
	})
}
