package middleware

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"scheduleorganizer/internal/exceptions"
	"scheduleorganizer/internal/schema"
)

type queryContextKey string

const (
	UploadParamsKey queryContextKey = "uploadParams"
	ScrapeParamsKey queryContextKey = "scrapeParams"
	RecordFilterKey queryContextKey = "recordFilter"
)

// allowedParams creates a map of valid JSON field tags for a given struct.
func allowedParams(schemaStruct interface{}) map[string]struct{} {
	val := reflect.ValueOf(schemaStruct)
	jsonTags := make(map[string]struct{}, val.Type().NumField())
	for i := 0; i < val.Type().NumField(); i++ {
		if tag := val.Type().Field(i).Tag.Get("json"); tag != "" {
			jsonTags[tag] = struct{}{}
		}
	}
	return jsonTags
}

// validateQueryParams checks if query parameters are allowed for a given schema.
func validateQueryParams(w http.ResponseWriter, query map[string][]string, schemaStruct interface{}) bool {
	allowed := allowedParams(schemaStruct)
	for param := range query {
		if _, ok := allowed[param]; !ok {
			err := fmt.Errorf("invalid parameter: %s", param)
			log.Error(err)
			exceptions.RequestErrorHandler(w, err)
			return false
		}
	}
	return true
}

// validateStruct validates a struct and returns formatted error if validation fails.
func validateStruct(w http.ResponseWriter, params interface{}) bool {
	if err := schema.RequestValidate.Struct(params); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			exceptions.ValidationErrorHandler(w, err)
		} else {
			exceptions.RequestErrorHandler(w, err)
		}
		return false
	}
	return true
}

// UploadQueryValidation validates the caller context of an upload batch.
func UploadQueryValidation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if !validateQueryParams(w, query, schema.UploadParams{}) {
			return
		}
		params := schema.UploadParams{
			Carrier:   query.Get("carrier"),
			Pol:       query.Get("pol"),
			Pod:       query.Get("pod"),
			StartDate: query.Get("startDate"),
			EndDate:   query.Get("endDate"),
		}
		if !validateStruct(w, params) {
			return
		}
		ctx := context.WithValue(r.Context(), UploadParamsKey, params)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ScrapeQueryValidation validates a scrape request.
func ScrapeQueryValidation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if !validateQueryParams(w, query, schema.ScrapeParams{}) {
			return
		}
		year, _ := strconv.Atoi(query.Get("year"))
		month, _ := strconv.Atoi(query.Get("month"))
		params := schema.ScrapeParams{
			URL:     query.Get("url"),
			Carrier: query.Get("carrier"),
			Pol:     query.Get("pol"),
			Pod:     query.Get("pod"),
			Year:    year,
			Month:   month,
		}
		if !validateStruct(w, params) {
			return
		}
		ctx := context.WithValue(r.Context(), ScrapeParamsKey, params)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RecordFilterValidation parses the optional carrier/pod view filter.
func RecordFilterValidation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := schema.RecordFilter{
			Carrier: query.Get("carrier"),
			Pod:     query.Get("pod"),
			Format:  query.Get("format"),
		}
		if !validateStruct(w, filter) {
			return
		}
		ctx := context.WithValue(r.Context(), RecordFilterKey, filter)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
