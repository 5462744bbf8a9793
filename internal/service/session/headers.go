package session

import (
	"context"
	"io"
	"net/http"

	"github.com/odanilov/adminctl/internal/storage"
)

// AuthHeaders returns the header set for a hand-rolled call to the
// admin API. The store is consulted on every call, so the headers
// always reflect the latest persisted token.
func AuthHeaders(store storage.Store) map[string]string {
	headers := map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
	}

	if token := store.Token(); token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return headers
}

// NewAuthRequest builds a request with the current auth headers applied.
func NewAuthRequest(
	ctx context.Context,
	store storage.Store,
	method, url string,
	body io.Reader,
) (*http.Request, error) {
	request, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	for name, value := range AuthHeaders(store) {
		request.Header.Set(name, value)
	}

	return request, nil
}

// DoAuth issues a request with the current auth headers applied and
// returns the raw response. The caller owns the response body.
func DoAuth(
	ctx context.Context,
	store storage.Store,
	httpClient *http.Client,
	method, url string,
	body io.Reader,
) (*http.Response, error) {
	request, err := NewAuthRequest(ctx, store, method, url, body)
	if err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return httpClient.Do(request)
}
