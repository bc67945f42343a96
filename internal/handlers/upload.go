package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"scheduleorganizer/external/interfaces"
	"scheduleorganizer/internal/exceptions"
	"scheduleorganizer/internal/ingest"
	"scheduleorganizer/internal/middleware"
	"scheduleorganizer/internal/schema"
	"scheduleorganizer/internal/store"
)

const maxUploadMemory = 32 << 20

// ScheduleIngestService owns the session store and the extraction
// collaborator for the upload surface.
type ScheduleIngestService struct {
	Store     *store.ScheduleStore
	Extractor interfaces.RowExtractor
}

func NewScheduleIngestService(s *store.ScheduleStore, extractor interfaces.RowExtractor) *ScheduleIngestService {
	return &ScheduleIngestService{Store: s, Extractor: extractor}
}

// FileResult summarizes one uploaded file. Failures surface as warnings;
// the batch always continues with the remaining files.
type FileResult struct {
	File    string `json:"file"`
	Source  string `json:"source"`
	Rows    int    `json:"rows"`
	Warning string `json:"warning,omitempty"`
}

type uploadResponse struct {
	Added   int          `json:"added"`
	Total   int          `json:"total"`
	Results []FileResult `json:"results"`
}

// UploadHandler ingests a multipart batch of schedule files, routing each by
// extension to the matching adapter.
func UploadHandler(s *ScheduleIngestService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params, _ := r.Context().Value(middleware.UploadParamsKey).(schema.UploadParams)
		if !schema.IsKnownCarrier(params.Carrier) {
			log.Warnf("carrier %q is outside the known set, treating as OTHER", params.Carrier)
		}
		opts := buildOptions(r, params)

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			exceptions.RequestErrorHandler(w, fmt.Errorf("read multipart form: %w", err))
			return
		}
		files := r.MultipartForm.File["files"]
		if len(files) == 0 {
			exceptions.RequestErrorHandler(w, fmt.Errorf("no files in upload batch"))
			return
		}

		response := uploadResponse{Results: make([]FileResult, 0, len(files))}
		for _, header := range files {
			result := s.ingestFile(r, header, opts)
			response.Added += result.Rows
			response.Results = append(response.Results, result)
		}
		response.Total = s.Store.Len()

		_ = json.NewEncoder(w).Encode(response)
	})
}

func (s *ScheduleIngestService) ingestFile(r *http.Request, header *multipart.FileHeader, opts ingest.Options) FileResult {
	result := FileResult{File: header.Filename}

	file, err := header.Open()
	if err != nil {
		result.Warning = exceptions.TrackWarning(fmt.Errorf("%s: open upload: %w", header.Filename, err)).Message
		return result
	}
	defer file.Close()
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		result.Warning = exceptions.TrackWarning(fmt.Errorf("%s: read upload: %w", header.Filename, err)).Message
		return result
	}

	var records []schema.ScheduleRecord
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	switch ext {
	case "xlsx", "xls":
		result.Source = "excel"
		records, err = ingest.ParseExcel(fileBytes, opts)
	case "csv":
		result.Source = "csv"
		records, err = ingest.ParseCSV(fileBytes, opts)
	case "pdf":
		result.Source = "pdf"
		records, err = s.ingestPDF(r, fileBytes, opts)
	case "png", "jpg", "jpeg":
		result.Source = "image"
		records, err = s.ingestImage(r, fileBytes, ext, opts)
	default:
		err = fmt.Errorf("unsupported format %q", ext)
	}
	if err != nil {
		result.Warning = exceptions.TrackWarning(fmt.Errorf("%s: %w", header.Filename, err)).Message
		return result
	}

	result.Rows = len(records)
	if len(records) > 0 {
		s.Store.Add(records)
		log.Infof("%s (%s) added %d schedules", header.Filename, result.Source, len(records))
	} else {
		result.Warning = "no schedules found"
	}
	return result
}

// ingestPDF maps recognizable page tables directly; text without a table
// header goes to the extraction collaborator instead.
func (s *ScheduleIngestService) ingestPDF(r *http.Request, fileBytes []byte, opts ingest.Options) ([]schema.ScheduleRecord, error) {
	text, err := ingest.ExtractPDFText(fileBytes)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("pdf contains no extractable text")
	}

	if records := ingest.MapDocumentTables(ingest.TablesFromText(text), opts); len(records) > 0 {
		return records, nil
	}
	return s.extractRows(r, interfaces.ExtractionRequest{
		Text:    text,
		Carrier: opts.Carrier,
		Pol:     opts.Pol,
		Pod:     opts.Pod,
	}, opts)
}

func (s *ScheduleIngestService) ingestImage(r *http.Request, fileBytes []byte, ext string, opts ingest.Options) ([]schema.ScheduleRecord, error) {
	mediaType := "image/jpeg"
	if ext == "png" {
		mediaType = "image/png"
	}
	return s.extractRows(r, interfaces.ExtractionRequest{
		Image:     fileBytes,
		MediaType: mediaType,
		Carrier:   opts.Carrier,
		Pol:       opts.Pol,
		Pod:       opts.Pod,
	}, opts)
}

func (s *ScheduleIngestService) extractRows(r *http.Request, req interfaces.ExtractionRequest, opts ingest.Options) ([]schema.ScheduleRecord, error) {
	if s.Extractor == nil {
		return nil, fmt.Errorf("extraction collaborator is not configured")
	}
	raw, err := s.Extractor.ExtractRows(r.Context(), req)
	if err != nil {
		return nil, err
	}
	rows, err := ingest.DecodeCollaboratorRows(raw)
	if err != nil {
		return nil, err
	}
	return ingest.NormalizeAIRows(rows, opts), nil
}

// buildOptions folds the caller context and the vocabulary config into
// adapter options. The caller's POD is always acceptable, whatever the
// configured set says.
func buildOptions(r *http.Request, params schema.UploadParams) ingest.Options {
	opts := ingest.Options{
		Carrier: params.Carrier,
		Pol:     params.Pol,
		Pod:     params.Pod,
	}
	if start, end, ok := params.DateRange(); ok {
		opts.Start, opts.End = start, end
	}

	if vocab, ok := r.Context().Value(middleware.VocabularyKey).(map[string]interface{}); ok {
		if ports, ok := vocab["acceptedPods"].([]interface{}); ok {
			for _, p := range ports {
				if name, ok := p.(string); ok {
					opts.AcceptedPods = append(opts.AcceptedPods, name)
				}
			}
		}
		if token, ok := vocab["polToken"].(string); ok {
			opts.PolToken = token
		}
	}
	if len(opts.AcceptedPods) > 0 {
		opts.AcceptedPods = append(opts.AcceptedPods, params.Pod)
	}
	return opts
}
