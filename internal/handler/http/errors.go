// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidForm is reported when a form body cannot be parsed.
	ErrInvalidForm = errors.New("invalid form data")

	// ErrInvalidThreadID is reported for a non-numeric {id} path segment.
	ErrInvalidThreadID = errors.New("invalid thread id")
)

// errRouteNotFound answers unsupported methods on known paths.
var errRouteNotFound = errors.New("route not found")
