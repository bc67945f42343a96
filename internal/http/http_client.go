package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Fetch performs a GET with per-attempt timeouts and linear backoff, caching
// successful bodies in Redis keyed by URL. The cache is consulted once, on
// the first attempt only.
func (hc *HttpClientWrapper) Fetch(ctx context.Context, urlString string, headers map[string]string, namespace string, expiry time.Duration) ([]byte, error) {
	for attempt := 0; attempt <= hc.maxRetries; attempt++ {
		if ctx.Err() == context.Canceled {
			log.Warnf("Fetch stopped: parent context canceled before attempt %d for %s", attempt, urlString)
			return nil, fmt.Errorf("fetch aborted: parent context was canceled")
		}
		childCtx, cancel := context.WithTimeout(ctx, hc.contextTimeout)
		defer cancel()
		start := time.Now()

		request, err := http.NewRequestWithContext(childCtx, http.MethodGet, urlString, nil)
		if err != nil {
			return nil, fmt.Errorf("error creating GET request: %v", err)
		}
		for k, v := range headers {
			request.Header.Set(k, v)
		}

		if attempt == 0 && hc.redisDb != nil {
			if cacheResult, exist := hc.redisDb.Get(namespace, request.URL.String()); exist {
				return cacheResult, nil
			}
		}

		resp, err := hc.client.Do(request)
		if err != nil {
			if ctx.Err() == context.Canceled {
				log.Warnf("Fetch stopped: parent context canceled after attempt %d for %s", attempt, request.URL.String())
				return nil, fmt.Errorf("fetch aborted: parent context was canceled")
			}
			if childCtx.Err() == context.DeadlineExceeded {
				log.Warningf("Attempt %d: %s - %s %.3fs", attempt, childCtx.Err(), request.URL, time.Since(start).Seconds())
			} else {
				log.Errorf("attempt %d: error performing HTTP request: %v", attempt, err)
			}
		} else {
			log.Infof("Request: %s %s %s %.3fs", request.Method, request.URL.String(), resp.Status, time.Since(start).Seconds())
			body, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return nil, fmt.Errorf("failed to process the request for %s due to http status %d", request.URL, resp.StatusCode)
			}
			if readErr == nil {
				if hc.redisDb != nil {
					go hc.redisDb.Set(namespace, request.URL.String(), body, expiry)
				}
				return body, nil
			}
			log.Errorf("attempt %d: error reading response body: %v", attempt, readErr)
		}

		if attempt < hc.maxRetries {
			backoffDelay := time.Duration(attempt+1) * hc.initialRetryDelay
			log.Infof("Retrying in %s (attempt %d/%d) for %s", backoffDelay, attempt+1, hc.maxRetries, urlString)
			time.Sleep(backoffDelay)
		}
	}
	log.Errorf("Fetch failed after %d attempts", hc.maxRetries)
	return nil, fmt.Errorf("fetch failed after %d attempts", hc.maxRetries)
}
