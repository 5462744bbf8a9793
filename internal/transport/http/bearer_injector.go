package http

//go:generate $MOCKGEN -source=bearer_injector.go -destination=mocks/token_provider_mock.go

import "net/http"

// TokenProvider supplies the current bearer token.
// An empty string means no credential is available.
type TokenProvider interface {
	// Token returns the stored bearer token, or an empty string if none is stored.
	Token() string
}

// BearerInjector is a custom http.RoundTripper that attaches the stored
// bearer token to outgoing requests. The token is re-read from the provider
// on every request, and a caller-supplied Authorization header always wins.
type BearerInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// tokens supplies the current bearer token.
	tokens TokenProvider
}

// NewBearerInjector creates and returns a new instance of BearerInjector.
func NewBearerInjector(next http.RoundTripper, tokens TokenProvider) http.RoundTripper {
	return &BearerInjector{
		next:   next,
		tokens: tokens,
	}
}

// RoundTrip executes a single HTTP transaction, injecting an
// "Authorization: Bearer <token>" header when a token exists and the
// caller did not set the header itself.
// It implements the http.RoundTripper interface.
func (t *BearerInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(authorizationHeader) == "" {
		if token := t.tokens.Token(); token != "" {
			req.Header.Set(authorizationHeader, bearerPrefix+token)
		}
	}

	return t.next.RoundTrip(req)
}
