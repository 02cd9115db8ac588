// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed HTTP client for the forum API.
//
// The dev server uses it to check that the API it proxies to is up; tools
// and tests use it to drive the API end to end. Error statuses are mapped to
// the sentinel values in errors.go so callers can use [errors.Is] (e.g.
// [ErrConflict] for 409, [ErrUnauthorized] for 401). The session cookie set
// by Login is kept in the client's cookie jar and sent with later requests.
package adapter

import (
	"context"

	"github.com/MKhiriev/threadboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a running forum API server.
type ServerAdapter interface {
	// Version returns the plain-text server version from GET /api/version.
	Version(ctx context.Context) (string, error)

	// Register creates an account.
	Register(ctx context.Context, req models.NewAccountRequest) error

	// Login signs in; the session cookie is stored for later requests.
	Login(ctx context.Context, email, password string) error

	// Logout ends the current session.
	Logout(ctx context.Context) error

	// CreateThread posts a thread as the signed-in account.
	CreateThread(ctx context.Context, title, body string) (models.Thread, error)

	// ListThreads returns a page of threads, newest first.
	ListThreads(ctx context.Context, limit, offset uint64) (models.ThreadList, error)

	// GetThread returns one thread or ErrNotFound.
	GetThread(ctx context.Context, id int64) (models.Thread, error)
}
