package session

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"fmt"
	"sync"

	"github.com/odanilov/adminctl/internal/client/admin"
	"github.com/odanilov/adminctl/internal/logger"
	"github.com/odanilov/adminctl/internal/storage"
)

// Service defines the session lifecycle operations.
type Service interface {
	// SignIn exchanges credentials for a token and persists it.
	// On failure, the previously stored token (if any) is restored.
	SignIn(ctx context.Context, email, password string) error
	// SignOut invalidates the session on the server and clears all
	// local session data regardless of the server's answer.
	SignOut(ctx context.Context) error
	// CheckAuth verifies the stored token against the backend and
	// reports whether the session is authenticated. Without a stored
	// token no network call is made.
	CheckAuth(ctx context.Context) (bool, error)
	// RefreshProfile fetches the profile of the authenticated user.
	// Failures are carried in the result, never in an error return.
	RefreshProfile(ctx context.Context) ProfileResult
	// Token returns the currently stored token, empty when signed out.
	Token() string
	// HandleUnauthorized drops the session after an observed 401.
	HandleUnauthorized()
	// Snapshot returns a copy of the current in-memory state.
	Snapshot() State
	// Close detaches the service from the client's 401 hook.
	Close()
}

// ServiceImpl implements the Service interface on top of the admin API
// client and the token store.
type ServiceImpl struct {
	// client talks to the admin API.
	client admin.Client
	// store persists the bearer token between invocations.
	store storage.Store
	// mu guards state.
	mu sync.Mutex
	// state is the in-memory view of the session.
	state State
}

// NewService creates a session service and binds it to the client's
// 401 hook, so any unauthorized response observed by the client drops
// the session.
func NewService(client admin.Client, store storage.Store) *ServiceImpl {
	s := &ServiceImpl{
		client: client,
		store:  store,
	}

	client.BindUnauthorizedHandler(s.HandleUnauthorized)

	return s
}

// SignIn exchanges credentials for a token and persists it.
// A failed attempt restores the previously stored token, even when the
// failure was a 401 from the login endpoint itself: rejected fresh
// credentials say nothing about the token that was already there.
func (s *ServiceImpl) SignIn(ctx context.Context, email, password string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	// Keep the previous token aside: the attempt must not ride on it,
	// but a failed attempt must not destroy an existing session either.
	previousToken := s.store.Token()

	if err := s.store.ClearToken(); err != nil {
		return fmt.Errorf("failed to clear stored token: %w", err)
	}

	response, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.restoreToken(ctx, previousToken)

		return err
	}

	token := response.ExtractToken()
	if err = s.store.SetToken(token); err != nil {
		s.restoreToken(ctx, previousToken)

		return fmt.Errorf("failed to persist token: %w", err)
	}

	user := response.User
	if user == nil {
		// Some backends return only the token. Synthesize a minimal
		// user record so the session has an identity to show.
		user = &admin.User{
			ID:    1,
			Name:  "Admin",
			Email: email,
			Role:  "admin",
		}
	}

	if err = s.store.SetUser(user); err != nil {
		logger.Warnf(ctx, "Failed to persist user record: %v", err)
	}

	s.mu.Lock()
	s.state.User = user
	s.state.Authenticated = true
	s.mu.Unlock()

	if result := s.RefreshProfile(ctx); result.Err != nil {
		logger.Debugf(ctx, "Profile fetch after sign-in failed: %v", result.Err)
	}

	return nil
}

// SignOut invalidates the session on the server and clears all local
// session data. The server call is best-effort: a dead token or an
// unreachable backend must not keep the user signed in locally.
func (s *ServiceImpl) SignOut(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.client.Logout(ctx); err != nil {
		logger.Debugf(ctx, "Server-side logout failed: %v", err)
	}

	if err := s.store.Clear(); err != nil {
		logger.Warnf(ctx, "Failed to clear stored session: %v", err)
	}

	s.resetState()

	return nil
}

// CheckAuth verifies the stored token against the backend.
func (s *ServiceImpl) CheckAuth(ctx context.Context) (bool, error) {
	if s.store.Token() == "" {
		s.resetState()

		return false, nil
	}

	s.setLoading(true)
	defer s.setLoading(false)

	response, err := s.client.CheckAuth(ctx)
	if err != nil {
		s.dropSession(ctx)

		return false, err
	}

	if !response.Authenticated {
		// A token the backend no longer recognizes is dead weight.
		s.dropSession(ctx)

		return false, nil
	}

	s.mu.Lock()
	s.state.User = response.User
	s.state.Authenticated = true
	s.mu.Unlock()

	if result := s.RefreshProfile(ctx); result.Err != nil {
		logger.Debugf(ctx, "Profile fetch after auth check failed: %v", result.Err)
	}

	return true, nil
}

// RefreshProfile fetches the profile of the authenticated user.
// On failure the in-memory state, including the authenticated flag,
// is left untouched; the last cached profile is offered instead.
func (s *ServiceImpl) RefreshProfile(ctx context.Context) ProfileResult {
	profile, err := s.client.GetProfile(ctx)
	if err != nil {
		return ProfileResult{
			Profile: s.fallbackProfile(),
			Err:     err,
		}
	}

	s.mu.Lock()
	s.state.Profile = profile
	s.mu.Unlock()

	return ProfileResult{
		Profile:   profile,
		Refreshed: true,
	}
}

// Token returns the currently stored token.
func (s *ServiceImpl) Token() string {
	return s.store.Token()
}

// HandleUnauthorized drops the session after an observed 401.
// Bound to the client's transport, so it fires no matter which call
// hit the stale token.
func (s *ServiceImpl) HandleUnauthorized() {
	if err := s.store.ClearToken(); err != nil {
		logger.Warnf(context.Background(), "Failed to clear stored token: %v", err)
	}

	s.resetState()
}

// Snapshot returns a copy of the current in-memory state.
func (s *ServiceImpl) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Close detaches the service from the client's 401 hook.
func (s *ServiceImpl) Close() {
	s.client.UnbindUnauthorizedHandler()
}

// restoreToken puts the snapshotted token back after a failed sign-in.
func (s *ServiceImpl) restoreToken(ctx context.Context, token string) {
	if token == "" {
		return
	}

	if err := s.store.SetToken(token); err != nil {
		logger.Warnf(ctx, "Failed to restore previous token: %v", err)
	}
}

// dropSession clears both the stored token and the in-memory state.
func (s *ServiceImpl) dropSession(ctx context.Context) {
	if err := s.store.ClearToken(); err != nil {
		logger.Warnf(ctx, "Failed to clear stored token: %v", err)
	}

	s.resetState()
}

// fallbackProfile returns the cached profile of the current user, if any.
func (s *ServiceImpl) fallbackProfile() *admin.Profile {
	s.mu.Lock()
	user, profile := s.state.User, s.state.Profile
	s.mu.Unlock()

	if profile != nil {
		return profile
	}

	if user == nil {
		return nil
	}

	if cached, found := s.client.CachedProfile(user.ID); found {
		return cached
	}

	return nil
}

func (s *ServiceImpl) setLoading(loading bool) {
	s.mu.Lock()
	s.state.Loading = loading
	s.mu.Unlock()
}

func (s *ServiceImpl) resetState() {
	s.mu.Lock()
	loading := s.state.Loading
	s.state = State{Loading: loading}
	s.mu.Unlock()
}
