// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devconfig

import (
	"net"
	"strconv"
)

// Plugin is an opaque extension descriptor registered with the dev server.
//
// The builder never inspects a plugin beyond keeping it in order. The runtime
// discovers what a plugin can do through optional capability interfaces
// declared in package devserver.
type Plugin interface {
	// Name identifies the plugin in logs and diagnostics
	// (e.g. "framework-integration").
	Name() string
}

// PluginFactory produces a plugin descriptor. A non-nil error aborts the
// build; the error is returned to the caller unchanged.
type PluginFactory func() (Plugin, error)

// Server is the binding descriptor: the interface and port the dev server
// listens on.
type Server struct {
	// Host is a literal IP address or hostname (e.g. "127.0.0.1").
	Host string `json:"host" yaml:"host"`

	// Port is the TCP port. It is stored exactly as given, so values outside
	// 0-65535 are possible and are rejected only when the runtime binds.
	Port int `json:"port" yaml:"port"`
}

// Address returns the "host:port" form of the descriptor suitable for
// net.Listen.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Config is the immutable configuration consumed by the dev server.
//
// The zero value is an empty configuration with no plugins and an empty
// binding descriptor. Values are created by [Builder.Build]; fields are
// unexported so that nothing downstream can change a Config after it has been
// handed out.
type Config struct {
	plugins []Plugin
	server  Server
}

// Plugins returns the registered plugins in declaration order. The returned
// slice is a copy; modifying it does not affect the Config.
func (c Config) Plugins() []Plugin {
	out := make([]Plugin, len(c.plugins))
	copy(out, c.plugins)
	return out
}

// PluginNames returns the names of the registered plugins in declaration
// order.
func (c Config) PluginNames() []string {
	names := make([]string, 0, len(c.plugins))
	for _, p := range c.plugins {
		if p == nil {
			names = append(names, "<nil>")
			continue
		}
		names = append(names, p.Name())
	}
	return names
}

// Server returns the binding descriptor.
func (c Config) Server() Server {
	return c.server
}
