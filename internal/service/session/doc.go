// Package session manages the admin session lifecycle: signing in and
// out, verifying the stored token against the backend and keeping the
// in-memory view of the authenticated user up to date.
package session
