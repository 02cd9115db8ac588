// Package http implements the forum's REST API on top of chi.
//
// Handlers translate form/JSON requests into service calls and service errors
// into HTTP statuses (see errorStatusMap). Every request passes through the
// trace id, access log and gzip middleware; routes that need a signed-in
// account are additionally wrapped in auth, which resolves the "sid" cookie.
package http
