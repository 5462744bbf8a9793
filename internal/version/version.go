// Package version exposes build-time version information.
// The variables are meant to be overridden via -ldflags at build time.
package version

// Build information. Populated at build time via -ldflags.
//
//nolint:gochecknoglobals // These are build-time variables set by the linker.
var (
	// Version is the semantic version of the application.
	Version = "1.0.0"
	// Commit is the git commit hash the binary was built from.
	Commit = "none"
	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)

// Short returns the bare semantic version.
func Short() string {
	return Version
}

// Full returns the complete version string including commit and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
