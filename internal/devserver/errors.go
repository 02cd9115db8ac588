// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import "errors"

var (
	// ErrBind is returned by Run when the configured host:port cannot be
	// bound: address in use, unknown host, privileged or out-of-range port.
	ErrBind = errors.New("dev server: bind failed")

	// ErrNilPlugin is returned by Run when the configuration holds a nil
	// plugin descriptor.
	ErrNilPlugin = errors.New("dev server: nil plugin")

	// ErrAlreadyRun is returned by every Run call after the first.
	ErrAlreadyRun = errors.New("dev server: runtime already run")

	// ErrPluginSetup wraps a RegisterRoutes failure.
	ErrPluginSetup = errors.New("dev server: plugin setup failed")
)
