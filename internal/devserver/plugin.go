package devserver

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Middleware is implemented by plugins that wrap every request.
type Middleware interface {
	Wrap(next http.Handler) http.Handler
}

// RouteRegistrar is implemented by plugins that serve their own routes.
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router) error
}

// Starter is implemented by plugins with background work. Start blocks until
// ctx is done; a non-nil error stops the whole server.
type Starter interface {
	Start(ctx context.Context) error
}
