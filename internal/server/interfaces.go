package server

import "context"

// Server is the lifecycle contract of the API process.
type Server interface {
	// Run serves until ctx is cancelled or a stop signal arrives, then shuts
	// down gracefully. It returns an error only if serving could not start or
	// failed unexpectedly.
	Run(ctx context.Context) error
}

// BackgroundRunner is a set of workers bound to the server's lifetime.
type BackgroundRunner interface {
	Run(ctx context.Context)
}
