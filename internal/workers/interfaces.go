// Package workers runs the API server's background jobs next to the HTTP
// server. Each Worker blocks until its context is cancelled.
package workers

import "context"

// Worker is a background job bound to the server's lifetime.
//
// Run must return once ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
