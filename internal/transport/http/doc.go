// Package http provides the HTTP interceptor chain for the admin API client:
// bearer token injection from the durable store, process-wide 401 detection
// that clears the session, request-ID and User-Agent header defaulting,
// and debug-level request/response logging.
package http
