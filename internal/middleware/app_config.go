package middleware

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"scheduleorganizer/config/controller"
	"scheduleorganizer/config/domain"
	"scheduleorganizer/internal/exceptions"
)

type appConfigKey string

// VocabularyKey exposes the port/carrier vocabulary section of config.yaml
// to the ingestion handlers.
const VocabularyKey appConfigKey = "vocabulary"

// GetAppConfig re-reads config.yaml per request so vocabulary edits land
// without a restart.
func GetAppConfig(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		config := domain.Config{}
		currentDir, err := os.Getwd()
		if err != nil {
			log.Fatalf("Failed to setup config: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(currentDir, "config.yaml"))
		if err != nil {
			exceptions.InternalErrorHandler(w, err)
			return
		}
		err = config.SetFromBytes(data)
		if err != nil {
			exceptions.InternalErrorHandler(w, err)
			return
		}
		c := controller.Controller{
			Config: &config,
		}
		result, err := c.Config.Get("vocabulary")
		if err != nil {
			exceptions.InternalErrorHandler(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), VocabularyKey, result)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}
