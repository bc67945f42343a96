package handlers

import (
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"scheduleorganizer/internal/database"
	"scheduleorganizer/internal/exceptions"
	"scheduleorganizer/internal/export"
	"scheduleorganizer/internal/store"
	"scheduleorganizer/internal/utils"
)

const (
	workbookNamespace = "export-workbook"
	workbookTTL       = time.Hour
	workbookFilename  = "shipping_schedules.xlsx"
)

// ExportHandler renders the merged dataset as a bucketed workbook. Workbooks
// are cached against the dataset fingerprint so repeat downloads of an
// unchanged dataset skip the render.
func ExportHandler(s *store.ScheduleStore, cache database.RedisRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records := s.All()
		if len(records) == 0 {
			exceptions.RequestErrorHandler(w, fmt.Errorf("no schedules to export"))
			return
		}

		fingerprint := s.Fingerprint()
		workbook, cached := []byte(nil), false
		if cache != nil {
			workbook, cached = cache.Get(workbookNamespace, fingerprint)
		}
		if !cached {
			plan := export.BuildPlan(records)
			built, err := export.WriteWorkbook(plan)
			if err != nil {
				exceptions.InternalErrorHandler(w, err)
				return
			}
			workbook = built
			if cache != nil {
				go cache.Set(workbookNamespace, fingerprint, workbook, workbookTTL)
			}
			log.Infof("rendered workbook with %d buckets covering %d schedules", len(plan.Buckets), len(records))
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", workbookFilename))
		fw := utils.NewFlushWriter(w)
		if _, err := fw.Write(workbook); err != nil {
			log.Errorf("stream workbook: %v", err)
			return
		}
		fw.Flush()
	})
}
