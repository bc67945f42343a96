package external

import (
	"context"
	"time"

	httpclient "scheduleorganizer/internal/http"
)

const (
	pageNamespace = "page-html"
	pageCacheTTL  = 15 * time.Minute
	browserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// StaticFetcher retrieves carrier pages with a plain HTTP GET. It serves the
// pages that render without scripting, and stands in for the browser
// collaborator when no browser is reachable.
type StaticFetcher struct {
	client *httpclient.HttpClient
}

func NewStaticFetcher(client *httpclient.HttpClient) *StaticFetcher {
	return &StaticFetcher{client: client}
}

func (f *StaticFetcher) FetchHTML(ctx context.Context, url string) (string, error) {
	headers := map[string]string{"User-Agent": browserAgent}
	body, err := f.client.Fetch(ctx, url, headers, pageNamespace, pageCacheTTL)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
