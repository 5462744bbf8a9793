// Package utils provides small shared helpers:
// User-Agent management for outgoing HTTP requests and
// content-type classification used by the debug log transport.
package utils
