package http

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDInjector is a custom http.RoundTripper that sets an
// X-Request-ID header on outgoing requests for server-side correlation.
// A caller-supplied request ID is preserved.
type RequestIDInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
}

// NewRequestIDInjector creates and returns a new instance of RequestIDInjector.
func NewRequestIDInjector(next http.RoundTripper) http.RoundTripper {
	return &RequestIDInjector{next: next}
}

// RoundTrip executes a single HTTP transaction and injects a fresh
// UUID request ID if the header is missing.
// It implements the http.RoundTripper interface.
func (t *RequestIDInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, uuid.NewString())
	}

	return t.next.RoundTrip(req)
}
