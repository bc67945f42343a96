package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jszwec/csvutil"
	log "github.com/sirupsen/logrus"

	"scheduleorganizer/internal/exceptions"
	"scheduleorganizer/internal/middleware"
	"scheduleorganizer/internal/schema"
	"scheduleorganizer/internal/store"
)

type recordsResponse struct {
	Total     int                     `json:"total"`
	Schedules []schema.ScheduleRecord `json:"schedules"`
}

// RecordsHandler serves the merged dataset, optionally narrowed by carrier or
// destination, as JSON or CSV.
func RecordsHandler(s *store.ScheduleStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, _ := r.Context().Value(middleware.RecordFilterKey).(schema.RecordFilter)

		records := filterRecords(s.All(), filter)
		if filter.Format == "csv" {
			data, err := csvutil.Marshal(records)
			if err != nil {
				exceptions.InternalErrorHandler(w, err)
				return
			}
			w.Header().Set("Content-Type", "text/csv")
			w.Header().Set("Content-Disposition", `attachment; filename="schedules.csv"`)
			_, _ = w.Write(data)
			return
		}

		_ = json.NewEncoder(w).Encode(recordsResponse{Total: len(records), Schedules: records})
	})
}

// ClearHandler drops the whole merged dataset.
func ClearHandler(s *store.ScheduleStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dropped := s.Len()
		s.Clear()
		log.Infof("cleared %d schedules", dropped)
		_ = json.NewEncoder(w).Encode(map[string]int{"cleared": dropped})
	})
}

func filterRecords(records []schema.ScheduleRecord, filter schema.RecordFilter) []schema.ScheduleRecord {
	if filter.Carrier == "" && filter.Pod == "" {
		return records
	}
	kept := make([]schema.ScheduleRecord, 0, len(records))
	for _, record := range records {
		if filter.Carrier != "" && !strings.EqualFold(record.Carrier, filter.Carrier) {
			continue
		}
		if filter.Pod != "" && !strings.EqualFold(record.Pod, filter.Pod) {
			continue
		}
		kept = append(kept, record)
	}
	return kept
}
