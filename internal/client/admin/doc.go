// Package admin provides a Go client for the admin web API.
// It wraps the login, logout, check-auth and profile endpoints,
// attaches the stored bearer token to every request through the
// transport interceptor chain, classifies login failures into
// user-facing error kinds, and keeps a small cache of the most
// recently fetched profiles.
package admin
