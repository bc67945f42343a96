package interfaces

import (
	"context"
)

// ExtractionRequest carries one document to an AI extraction collaborator,
// together with the caller context the prompt needs.
type ExtractionRequest struct {
	Text      string // plain text source, truncated to the prompt budget
	Image     []byte // image source; MediaType must be set when present
	MediaType string
	Carrier   string
	Pol       string
	Pod       string
}

// RowExtractor is the AI text/vision collaborator: given raw document
// content it returns a best-effort JSON array of loosely-typed rows. The
// core only normalizes whatever comes back.
type RowExtractor interface {
	ExtractRows(ctx context.Context, req ExtractionRequest) (string, error)
}

// PageFetcher is the browser-automation collaborator: it owns driver
// lifecycle and navigation and yields only rendered page HTML.
type PageFetcher interface {
	FetchHTML(ctx context.Context, url string) (string, error)
}
