// Package server runs the forum API: the HTTP server and the background
// workers share one lifetime that ends on SIGINT, SIGTERM or SIGQUIT (or when
// the parent context is cancelled), after which in-flight requests are given
// a grace period to finish.
package server
