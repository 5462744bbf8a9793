package session

import "github.com/odanilov/adminctl/internal/client/admin"

// State is the in-memory view of the current session.
type State struct {
	// User is the authenticated user, nil when signed out.
	User *admin.User
	// Profile is the last fetched profile of the user, nil when none
	// was fetched yet.
	Profile *admin.Profile
	// Loading reports whether a session operation is in flight.
	Loading bool
	// Authenticated reports whether the stored token was accepted by
	// the backend.
	Authenticated bool
}

// ProfileResult is the outcome of a profile refresh.
// A failed refresh is not an authentication event, so the error is
// carried in the result instead of failing the caller.
type ProfileResult struct {
	// Profile is the freshest profile available, possibly from cache.
	Profile *admin.Profile
	// Refreshed reports whether the profile came from the backend on
	// this call rather than from a previous fetch.
	Refreshed bool
	// Err is the fetch error, if any.
	Err error
}
