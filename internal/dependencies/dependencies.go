package dependencies

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"scheduleorganizer/external"
	"scheduleorganizer/external/interfaces"
	"scheduleorganizer/internal/database"
	httpclient "scheduleorganizer/internal/http"
	env "scheduleorganizer/internal/secret"
	"scheduleorganizer/internal/store"
)

// all dependencies required by this app
type Dependencies struct {
	HTTPClient *httpclient.HttpClient
	EnvManager *env.Manager
	Store      *store.ScheduleStore
	Extractor  interfaces.RowExtractor
	Fetcher    interfaces.PageFetcher
	RedisDB    database.RedisRepository
}

// dependenciesInstance holds the singleton instance of Dependencies.
var (
	dependenciesInstance *Dependencies
	once                 sync.Once
	initErr              error
)

// NewDependencies initializes dependencies only once and returns the same instance on subsequent calls.
func NewDependencies() (*Dependencies, error) {
	once.Do(func() {
		// Initialize environment manager
		envManager, err := env.NewManager()
		if err != nil {
			initErr = err
			return
		}

		// Initialize Redis connection
		redisSettings := database.RedisSettings{
			DB:         envManager.RedisDb,
			DBUser:     envManager.RedisUser,
			DBPassword: envManager.RedisPw,
			Host:       envManager.RedisHost,
			Port:       envManager.RedisPort,
		}
		redis, err := database.NewRedisConnection(redisSettings)
		if err != nil {
			initErr = err
			return
		}

		// Initialize HTTP client
		httpClient := httpclient.CreateHttpClientInstance(
			redis,
			httpclient.WithCtxTimeout(10*time.Second),
			httpclient.WithMaxRetries(2),
			httpclient.WithRetryDelay(2*time.Second),
			httpclient.WithMaxIdleConns(200),
			httpclient.WithMaxConnsPerHost(200),
			httpclient.WithIdleConnTimeout(90),
		)

		// The extraction collaborator is optional; without a key the upload
		// surface still serves spreadsheet and table-bearing PDF files.
		var extractor interfaces.RowExtractor
		if *envManager.GeminiAPIKey != "" {
			gemini, err := external.NewGeminiExtractor(context.Background(), *envManager.GeminiAPIKey, *envManager.GeminiModel)
			if err != nil {
				initErr = err
				return
			}
			extractor = gemini
		} else {
			log.Warn("GEMINI_API_KEY not set; document extraction disabled")
		}

		// Script-heavy carrier pages need a real browser; fall back to plain
		// GET when none is reachable.
		var fetcher interfaces.PageFetcher
		if rodFetcher, err := external.NewRodFetcher(); err == nil {
			fetcher = rodFetcher
		} else {
			log.Warnf("browser unavailable, falling back to static fetch: %v", err)
			fetcher = external.NewStaticFetcher(httpClient)
		}

		// Set the singleton instance
		dependenciesInstance = &Dependencies{
			HTTPClient: httpClient,
			EnvManager: envManager,
			Store:      store.NewScheduleStore(),
			Extractor:  extractor,
			Fetcher:    fetcher,
			RedisDB:    redis,
		}
	})

	if initErr != nil {
		return nil, initErr
	}

	return dependenciesInstance, nil
}
