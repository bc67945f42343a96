package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"

	"scheduleorganizer/external/interfaces"
	"scheduleorganizer/internal/exceptions"
	"scheduleorganizer/internal/ingest"
	"scheduleorganizer/internal/middleware"
	"scheduleorganizer/internal/schema"
	"scheduleorganizer/internal/store"
)

// ScheduleScrapeService pairs the browser collaborator with the session store.
type ScheduleScrapeService struct {
	Store   *store.ScheduleStore
	Fetcher interfaces.PageFetcher
}

func NewScheduleScrapeService(s *store.ScheduleStore, fetcher interfaces.PageFetcher) *ScheduleScrapeService {
	return &ScheduleScrapeService{Store: s, Fetcher: fetcher}
}

type scrapeResponse struct {
	URL    string `json:"url"`
	Source string `json:"source"`
	Rows   int    `json:"rows"`
	Total  int    `json:"total"`
}

// ScrapeHandler fetches a rendered carrier page and ingests its schedule
// tables; a tableless page is retried as a single-sailing detail page.
func ScrapeHandler(s *ScheduleScrapeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params, _ := r.Context().Value(middleware.ScrapeParamsKey).(schema.ScrapeParams)
		if s.Fetcher == nil {
			exceptions.InternalErrorHandler(w, fmt.Errorf("page fetcher is not configured"))
			return
		}

		html, err := s.Fetcher.FetchHTML(r.Context(), params.URL)
		if err != nil {
			exceptions.InternalErrorHandler(w, fmt.Errorf("fetch %s: %w", params.URL, err))
			return
		}

		opts := ingest.Options{Carrier: params.Carrier, Pol: params.Pol, Pod: params.Pod}
		records, err := ingest.ParseScrapedTables(html, opts, params.Year, params.Month)
		if err != nil {
			exceptions.InternalErrorHandler(w, err)
			return
		}

		source := "tables"
		if len(records) == 0 {
			source = "detail"
			if record, ok := ingest.ParseDetailText(pageText(html), opts, params.Year, params.Month); ok {
				records = append(records, record)
			}
		}

		if len(records) > 0 {
			s.Store.Add(records)
			log.Infof("%s (%s) added %d schedules", params.URL, source, len(records))
		}
		_ = json.NewEncoder(w).Encode(scrapeResponse{
			URL:    params.URL,
			Source: source,
			Rows:   len(records),
			Total:  s.Store.Len(),
		})
	})
}

// pageText flattens rendered HTML to the visible text the labeled-field
// patterns run against.
func pageText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return doc.Text()
}
