package utils

import "net/http"

// FlushWriter pushes bytes to the client as they are written, which keeps
// long-running scrape responses from sitting in the server buffer.
type FlushWriter struct {
	http.ResponseWriter
}

// Flush forwards to the underlying writer when it supports flushing and
// is a no-op otherwise, so callers never need the type assertion.
func (fw FlushWriter) Flush() {
	if flusher, ok := fw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func NewFlushWriter(w http.ResponseWriter) FlushWriter {
	return FlushWriter{ResponseWriter: w}
}
