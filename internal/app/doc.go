// Package app provides the command execution logic of the CLI.
// It wires the token store, the admin API client and the session
// service together and maps session outcomes to user-facing output.
package app
