package admin

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/odanilov/adminctl/internal/config"
	http_transport "github.com/odanilov/adminctl/internal/transport/http"
	"github.com/odanilov/adminctl/internal/utils"
)

// Client defines the operations of the admin API consumed by the session manager.
type Client interface {
	// Login exchanges credentials for a bearer token.
	// The returned response is guaranteed to carry an extractable token.
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	// Logout invalidates the current session on the server.
	Logout(ctx context.Context) error
	// CheckAuth verifies the stored token against the server.
	CheckAuth(ctx context.Context) (*CheckAuthResponse, error)
	// GetProfile fetches the complete profile of the authenticated user.
	GetProfile(ctx context.Context) (*Profile, error)
	// CachedProfile returns the most recently fetched profile for the
	// given user ID, if one is held in the in-process cache.
	CachedProfile(userID int64) (*Profile, bool)
	// BindUnauthorizedHandler registers the hook invoked whenever any
	// response comes back 401.
	BindUnauthorizedHandler(handler http_transport.UnauthorizedHandler)
	// UnbindUnauthorizedHandler removes the 401 hook.
	UnbindUnauthorizedHandler()
	// GetBaseURL returns the base URL of the admin API.
	GetBaseURL() string
}

// ClientImpl implements the Client interface for the admin API.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the base URL for API requests.
	baseURL string
	// httpClient is the HTTP client with the interceptor chain installed.
	httpClient *http.Client
	// guard watches responses for 401s.
	guard *http_transport.SessionGuard
	// profilesCache caches recently fetched profiles by user ID so
	// best-effort consumers can fall back to the last known record.
	profilesCache *lru.Cache[int64, *Profile]
}

// NewClient creates and returns a new instance of ClientImpl.
// The token provider is consulted on every request, so a token persisted
// after construction is picked up without rebuilding the client.
func NewClient(cfg *config.Config, tokens http_transport.TokenProvider) (*ClientImpl, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	// Assemble the interceptor chain. The guard sits closest to the wire
	// so it observes every response, including those of bypassing callers.
	guard := http_transport.NewSessionGuard(
		http_transport.NewLogTransport(http.DefaultTransport, cfg.ParsedMaxLogLength))

	transport := http_transport.NewUserAgentInjector(
		http_transport.NewRequestIDInjector(
			http_transport.NewBearerInjector(guard, tokens)),
		utils.NewSimpleUserAgentProvider(cfg.UserAgent))

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   cfg.ParsedRequestTimeout,
	}

	profilesCache, err := lru.New[int64, *Profile](profilesCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create profiles cache: %w", err)
	}

	return &ClientImpl{
		cfg:           cfg,
		baseURL:       baseURL.String(),
		httpClient:    httpClient,
		guard:         guard,
		profilesCache: profilesCache,
	}, nil
}

// Login exchanges credentials for a bearer token. Failures are classified
// into user-facing kinds; see the Kind constants.
func (c *ClientImpl) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	result, err := postJSON[LoginResponse](c, ctx, adminAPILoginURI, &LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil || result == nil || result.Data == nil {
		return nil, classifyLoginFailure(result, err)
	}

	response := result.Data
	if response.ExtractToken() == "" {
		// The backend may report success and still omit the token;
		// that is a failure for us, with the payload kept as evidence.
		return nil, &Error{
			Kind:    KindNoTokenInResponse,
			Message: "login response did not contain a token",
			Payload: result.Raw,
			cause:   ErrNoTokenInResponse,
		}
	}

	return response, nil
}

// Logout invalidates the current session on the server.
// Any response shape is accepted.
func (c *ClientImpl) Logout(ctx context.Context) error {
	_, err := postJSON[map[string]any](c, ctx, adminAPILogoutURI, nil)
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}

	return nil
}

// CheckAuth verifies the stored token against the server.
func (c *ClientImpl) CheckAuth(ctx context.Context) (*CheckAuthResponse, error) {
	result, err := fetchJSON[CheckAuthResponse](c, ctx, adminAPICheckAuthURI)
	if err != nil {
		return nil, err
	}

	if result.Data == nil {
		return nil, ErrNotAuthenticated
	}

	return result.Data, nil
}

// GetProfile fetches the complete profile of the authenticated user
// and stores it in the in-process cache.
func (c *ClientImpl) GetProfile(ctx context.Context) (*Profile, error) {
	result, err := fetchJSON[GetProfileResponse](c, ctx, adminAPIProfileURI)
	if err != nil {
		return nil, err
	}

	if result.Data == nil || !result.Data.Success || result.Data.Data == nil {
		return nil, ErrEmptyProfile
	}

	profile := result.Data.Data
	c.profilesCache.Add(profile.ID, profile)

	return profile, nil
}

// CachedProfile returns the most recently fetched profile for the given
// user ID, if one is held in the in-process cache.
func (c *ClientImpl) CachedProfile(userID int64) (*Profile, bool) {
	return c.profilesCache.Get(userID)
}

// BindUnauthorizedHandler registers the hook invoked whenever any response
// comes back 401.
func (c *ClientImpl) BindUnauthorizedHandler(handler http_transport.UnauthorizedHandler) {
	c.guard.Bind(handler)
}

// UnbindUnauthorizedHandler removes the 401 hook.
func (c *ClientImpl) UnbindUnauthorizedHandler() {
	c.guard.Unbind()
}

// GetBaseURL returns the base URL of the admin API.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

// classifyLoginFailure maps a failed login exchange onto a user-facing
// error kind. Order matters: specific statuses win over the generic
// backend message, which wins over the fallback.
func classifyLoginFailure(result *FetchJSONResult[LoginResponse], err error) *Error {
	if result == nil {
		return &Error{
			Kind:    KindNetworkUnreachable,
			Message: "cannot reach the server",
			cause:   err,
		}
	}

	var (
		raw     = result.Raw
		message string
	)

	if result.Data != nil {
		message = result.Data.Message
	}

	switch {
	case isSuccessStatus(result.StatusCode):
		// A success status landed here, so the body held no decodable
		// response (empty, or an HTML page from a proxy): there is no
		// token to extract.
		return &Error{
			Kind:    KindNoTokenInResponse,
			Message: "login response did not contain a token",
			Payload: raw,
			cause:   ErrNoTokenInResponse,
		}
	case result.StatusCode == http.StatusUnauthorized:
		return &Error{
			Kind:    KindInvalidCredentials,
			Message: "invalid email or password",
			Payload: raw,
			cause:   err,
		}
	case result.StatusCode == http.StatusInternalServerError:
		return &Error{
			Kind:    KindServerError,
			Message: "server error, try again later",
			Payload: raw,
			cause:   err,
		}
	case message != "":
		return &Error{
			Kind:    KindServerMessage,
			Message: message,
			Payload: raw,
			cause:   err,
		}
	default:
		return &Error{
			Kind:    KindUnknown,
			Message: "login failed",
			Payload: raw,
			cause:   err,
		}
	}
}
