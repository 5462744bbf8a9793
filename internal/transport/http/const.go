package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultUserAgent is the default User-Agent string used for HTTP requests.
	DefaultUserAgent = "adminctl/1.0"

	// authorizationHeader is the HTTP header carrying the bearer token.
	authorizationHeader = "Authorization"

	// bearerPrefix is the scheme prefix of the Authorization header value.
	bearerPrefix = "Bearer "

	// requestIDHeader is the HTTP header carrying the request correlation ID.
	requestIDHeader = "X-Request-ID"

	// userAgentHeader is the HTTP header name for User-Agent.
	userAgentHeader = "User-Agent"
)
