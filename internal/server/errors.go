// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrListen is returned by Run when the HTTP address cannot be bound.
	ErrListen = errors.New("failed to listen on HTTP address")
)
