package admin

import (
	"errors"
	"fmt"
)

// Static error definitions for better error handling.
var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrNoTokenInResponse indicates a login response without an extractable token.
	ErrNoTokenInResponse = errors.New("no token in response")
	// ErrNotAuthenticated indicates the verification endpoint rejected the stored token.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrEmptyProfile indicates a profile response without a profile record.
	ErrEmptyProfile = errors.New("profile payload is empty")
)

// Kind classifies login failures into categories the caller can branch on.
type Kind int

const (
	// KindUnknown is the fallback classification.
	KindUnknown Kind = iota
	// KindInvalidCredentials corresponds to an HTTP 401 from the login endpoint.
	KindInvalidCredentials
	// KindServerError corresponds to an HTTP 500 from the login endpoint.
	KindServerError
	// KindServerMessage is any response carrying an explicit backend message.
	KindServerMessage
	// KindNoTokenInResponse is a success-status response lacking an extractable token.
	KindNoTokenInResponse
	// KindNetworkUnreachable is a transport-level failure.
	KindNetworkUnreachable
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid credentials"
	case KindServerError:
		return "server error"
	case KindServerMessage:
		return "server message"
	case KindNoTokenInResponse:
		return "no token in response"
	case KindNetworkUnreachable:
		return "network unreachable"
	case KindUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// Error is a classified admin API failure. Message is safe to show to the
// user; Payload carries the raw backend body for diagnostics.
type Error struct {
	// Kind is the failure classification.
	Kind Kind
	// Message is the user-facing description of the failure.
	Message string
	// Payload is the raw backend response body, when one was received.
	Payload []byte
	// cause is the underlying error, if any.
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf returns the classification of err,
// or KindUnknown when err is not a classified admin API error.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}

	return KindUnknown
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
