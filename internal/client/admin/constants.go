package admin

const (
	// adminAPILoginURI is the URI path for the credential login endpoint.
	adminAPILoginURI = "api/admin/login"
	// adminAPILogoutURI is the URI path for the logout endpoint.
	adminAPILogoutURI = "api/admin/logout"
	// adminAPICheckAuthURI is the URI path for the session verification endpoint.
	adminAPICheckAuthURI = "api/admin/check-auth"
	// adminAPIProfileURI is the URI path for the profile endpoint.
	adminAPIProfileURI = "api/admin/profile"
)

const (
	// profilesCacheSize defines the maximum number of profile entries to cache.
	// A single process rarely sees more than its own profile, but the cache
	// is keyed by user ID so switching accounts within one run stays cheap.
	profilesCacheSize = 16
)
