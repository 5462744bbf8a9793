package http

import (
	"net/http"
	"sync/atomic"
)

// UnauthorizedHandler reacts to an observed 401 response.
type UnauthorizedHandler func()

// SessionGuard is a custom http.RoundTripper that watches every response
// passing through the client. Any 401, no matter which call produced it,
// invokes the bound handler so the session can be cleared in one place.
// The handler is bound and unbound explicitly, so tearing a session down
// never leaves a stale hook behind.
type SessionGuard struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// handler is the currently bound 401 handler, nil when unbound.
	handler atomic.Pointer[UnauthorizedHandler]
}

// NewSessionGuard creates and returns a new instance of SessionGuard
// with no handler bound.
func NewSessionGuard(next http.RoundTripper) *SessionGuard {
	return &SessionGuard{next: next}
}

// Bind registers the handler invoked on every 401 response.
// Binding replaces any previously bound handler.
func (g *SessionGuard) Bind(handler UnauthorizedHandler) {
	if handler == nil {
		g.Unbind()
		return
	}

	g.handler.Store(&handler)
}

// Unbind removes the currently bound handler.
func (g *SessionGuard) Unbind() {
	g.handler.Store(nil)
}

// RoundTrip executes a single HTTP transaction and triggers the bound
// handler when the response status is 401 Unauthorized.
// It implements the http.RoundTripper interface.
func (g *SessionGuard) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := g.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if handler := g.handler.Load(); handler != nil {
			(*handler)()
		}
	}

	return resp, nil
}
