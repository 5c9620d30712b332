package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives and
	// then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is done or the listener fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
