package routers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"scheduleorganizer/internal/dependencies"
	"scheduleorganizer/internal/handlers"
	"scheduleorganizer/internal/middleware"
)

// ScheduleRouter wires the whole schedule pipeline surface: ingestion,
// dataset access, scraping and workbook export.
func ScheduleRouter() http.Handler {
	deps, err := dependencies.NewDependencies()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize dependencies")
		return nil
	}

	baseStack := middleware.CreateStack(
		middleware.Recovery,
		middleware.CheckCORS,
		middleware.AddCorrelationID,
		middleware.AddHeaders,
		middleware.Logging,
	)
	uploadStack := middleware.CreateStack(baseStack, middleware.GetAppConfig, middleware.UploadQueryValidation)
	scrapeStack := middleware.CreateStack(baseStack, middleware.ScrapeQueryValidation)
	recordStack := middleware.CreateStack(baseStack, middleware.RecordFilterValidation)

	ingestService := handlers.NewScheduleIngestService(deps.Store, deps.Extractor)
	scrapeService := handlers.NewScheduleScrapeService(deps.Store, deps.Fetcher)

	scheduleRouter := http.NewServeMux()
	scheduleRouter.Handle("POST /schedules/upload", uploadStack(handlers.UploadHandler(ingestService)))
	scheduleRouter.Handle("POST /schedules/scrape", scrapeStack(handlers.ScrapeHandler(scrapeService)))
	scheduleRouter.Handle("GET /schedules", recordStack(handlers.RecordsHandler(deps.Store)))
	scheduleRouter.Handle("DELETE /schedules", baseStack(handlers.ClearHandler(deps.Store)))
	scheduleRouter.Handle("GET /schedules/export", baseStack(handlers.ExportHandler(deps.Store, deps.RedisDB)))
	scheduleRouter.Handle("GET /schedules/vocabulary", baseStack(handlers.VocabularyHandler()))
	return scheduleRouter
}
