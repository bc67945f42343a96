package external

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	log "github.com/sirupsen/logrus"
)

// RodFetcher renders carrier schedule pages in a headless browser and hands
// back the final HTML. Navigation, waiting and driver lifecycle all stay on
// this side of the boundary; the core only parses what it gets.
type RodFetcher struct {
	browser *rod.Browser
}

func NewRodFetcher() (*RodFetcher, error) {
	browser := rod.New()
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to browser: %w", err)
	}
	return &RodFetcher{browser: browser}, nil
}

// FetchHTML implements interfaces.PageFetcher.
func (f *RodFetcher) FetchHTML(ctx context.Context, url string) (string, error) {
	page, err := f.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return "", fmt.Errorf("open page %s: %w", url, err)
	}
	defer func() { _ = page.Close() }()

	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("wait for page %s: %w", url, err)
	}
	// Carrier schedule tables often render after load; give the DOM a beat
	// to settle before grabbing it.
	if err := page.WaitIdle(10 * time.Second); err != nil {
		log.Warnf("page %s never went idle, parsing current DOM", url)
	}
	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("read page html %s: %w", url, err)
	}
	return html, nil
}

// Close shuts the underlying browser down.
func (f *RodFetcher) Close() error {
	return f.browser.Close()
}
