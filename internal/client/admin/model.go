package admin

// LoginRequest is the credentials payload for the login endpoint.
type LoginRequest struct {
	// Email is the account email address.
	Email string `json:"email"`
	// Password is the account password.
	Password string `json:"password"`
}

// User represents an authenticated account as returned by the
// login or check-auth endpoint. Every field may be absent.
type User struct {
	// ID is the unique user identifier.
	ID int64 `json:"id"`
	// Name is the short display name.
	Name string `json:"name"`
	// Email is the account email address.
	Email string `json:"email"`
	// Role is the account role.
	Role string `json:"role"`
	// FullName is the optional full display name.
	FullName string `json:"full_name,omitempty"`
	// APIToken is a bearer token nested inside the user record.
	// Some backend versions return the token here instead of top-level.
	APIToken string `json:"api_token,omitempty"`
}

// Profile is the complete identity record fetched from the profile
// endpoint. Unlike User, all fields are expected to be populated.
type Profile struct {
	// ID is the unique user identifier.
	ID int64 `json:"id"`
	// Name is the short display name.
	Name string `json:"name"`
	// Email is the account email address.
	Email string `json:"email"`
	// Role is the account role.
	Role string `json:"role"`
	// FullName is the full display name.
	FullName string `json:"full_name"`
}

// LoginResponse represents the response structure of the login endpoint.
type LoginResponse struct {
	// Success reports whether the backend considered the login successful.
	Success bool `json:"success"`
	// Token is the bearer token at its primary, top-level location.
	Token string `json:"token"`
	// User is the authenticated account, when the backend returns one.
	User *User `json:"user"`
	// Message is an optional human-readable message from the backend.
	Message string `json:"message"`
}

// ExtractToken returns the bearer token from the response, checking the
// top-level token field first and the nested user.api_token field second.
// An empty string means no token could be extracted.
func (r *LoginResponse) ExtractToken() string {
	if r.Token != "" {
		return r.Token
	}

	if r.User != nil {
		return r.User.APIToken
	}

	return ""
}

// CheckAuthResponse represents the response structure of the
// session verification endpoint.
type CheckAuthResponse struct {
	// Authenticated reports whether the presented token is valid.
	Authenticated bool `json:"authenticated"`
	// User is the account the token belongs to.
	User *User `json:"user"`
}

// GetProfileResponse represents the response structure of the profile endpoint.
type GetProfileResponse struct {
	// Success reports whether the backend considered the request successful.
	Success bool `json:"success"`
	// Data contains the profile record.
	Data *Profile `json:"data"`
	// Message is an optional human-readable message from the backend.
	Message string `json:"message"`
}

// FetchJSONResult pairs a decoded payload with the HTTP status code
// and the raw body, kept for error diagnostics.
type FetchJSONResult[T any] struct {
	// Data is the decoded payload, nil when decoding failed.
	Data *T
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Raw is the raw response body.
	Raw []byte
}
