// Package server runs the HTTP transport of the REST kit.
//
// It owns the [net/http.Server] lifecycle: startup, signal handling and a
// graceful shutdown bounded by the configured timeout.
package server
