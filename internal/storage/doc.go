// Package storage persists the session credential between process runs.
// It keeps a small JSON state file holding the bearer token under a
// primary key and a legacy key (kept in sync for older tooling),
// plus a write-only copy of the last-known user record.
// Every read goes back to disk, so external sign-outs are observed.
package storage
