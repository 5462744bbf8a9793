package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doGuardedRequest(t *testing.T, guard *SessionGuard, url string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil) //nolint:noctx // Test code, context not needed.
	require.NoError(t, err)

	resp, err := guard.RoundTrip(req)
	require.NoError(t, err)

	resp.Body.Close() //nolint:errcheck,gosec // Test cleanup, error is not critical.

	return resp
}

// TestSessionGuard_UnauthorizedTriggersHandler tests that a 401 response
// invokes the bound handler.
func TestSessionGuard_UnauthorizedTriggersHandler(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	guard := NewSessionGuard(http.DefaultTransport)

	var calls int

	guard.Bind(func() { calls++ })

	resp := doGuardedRequest(t, guard, server.URL)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 1, calls)
}

// TestSessionGuard_SuccessDoesNotTriggerHandler tests that non-401 responses
// leave the handler alone.
func TestSessionGuard_SuccessDoesNotTriggerHandler(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	guard := NewSessionGuard(http.DefaultTransport)

	var calls int

	guard.Bind(func() { calls++ })

	doGuardedRequest(t, guard, server.URL)

	assert.Zero(t, calls)
}

// TestSessionGuard_OtherErrorStatusesIgnored tests that 403/500 do not
// clear the session.
func TestSessionGuard_OtherErrorStatusesIgnored(t *testing.T) {
	t.Parallel()

	statuses := []int{http.StatusForbidden, http.StatusInternalServerError, http.StatusBadRequest}

	for _, status := range statuses {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))

		guard := NewSessionGuard(http.DefaultTransport)

		var calls int

		guard.Bind(func() { calls++ })

		resp := doGuardedRequest(t, guard, server.URL)

		assert.Equal(t, status, resp.StatusCode)
		assert.Zero(t, calls)

		server.Close()
	}
}

// TestSessionGuard_UnbindStopsHandler tests that unbinding detaches the hook.
func TestSessionGuard_UnbindStopsHandler(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	guard := NewSessionGuard(http.DefaultTransport)

	var calls int

	guard.Bind(func() { calls++ })
	doGuardedRequest(t, guard, server.URL)
	require.Equal(t, 1, calls)

	guard.Unbind()
	doGuardedRequest(t, guard, server.URL)
	assert.Equal(t, 1, calls)
}

// TestSessionGuard_NoHandlerBound tests that a 401 with no handler bound
// passes through untouched.
func TestSessionGuard_NoHandlerBound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	guard := NewSessionGuard(http.DefaultTransport)

	resp := doGuardedRequest(t, guard, server.URL)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// TestSessionGuard_BindNilUnbinds tests that binding nil behaves like Unbind.
func TestSessionGuard_BindNilUnbinds(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	guard := NewSessionGuard(http.DefaultTransport)

	var calls int

	guard.Bind(func() { calls++ })
	guard.Bind(nil)

	doGuardedRequest(t, guard, server.URL)
	assert.Zero(t, calls)
}

// TestSessionGuard_TransportErrorPassesThrough tests that transport failures
// are returned without touching the handler.
func TestSessionGuard_TransportErrorPassesThrough(t *testing.T) {
	t.Parallel()

	guard := NewSessionGuard(http.DefaultTransport)

	var calls int

	guard.Bind(func() { calls++ })

	req, err := http.NewRequest(http.MethodGet, "http://[::1]:0", nil) //nolint:noctx // Test code, context not needed.
	require.NoError(t, err)

	resp, err := guard.RoundTrip(req) //nolint:bodyclose // Body is empty on error.
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Zero(t, calls)
}
