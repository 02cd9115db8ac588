package devconfig

import (
	"fmt"
)

// Builder collects plugin factories and the binding descriptor and produces a
// [Config]. A Builder is single-use scratch state; the Config it returns does
// not share memory with it.
type Builder struct {
	factories []PluginFactory
	server    Server
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		factories: make([]PluginFactory, 0, 4),
	}
}

// WithPlugins appends factories in the given order. Factories are not invoked
// until Build.
func (b *Builder) WithPlugins(factories ...PluginFactory) *Builder {
	b.factories = append(b.factories, factories...)
	return b
}

// WithServer sets the binding descriptor. The values are stored as given.
func (b *Builder) WithServer(host string, port int) *Builder {
	b.server = Server{Host: host, Port: port}
	return b
}

// Build invokes every factory in order and returns the assembled Config.
//
// Results are kept exactly as returned, including nil descriptors; the runtime
// decides what it can apply. The first factory error stops the build: later
// factories are not invoked and a zero Config is returned together with the
// error, wrapped with the factory's position so that errors.Is/As still match
// the factory's error.
func (b *Builder) Build() (Config, error) {
	plugins := make([]Plugin, 0, len(b.factories))
	for i, factory := range b.factories {
		plugin, err := factory()
		if err != nil {
			return Config{}, fmt.Errorf("plugin factory #%d: %w", i, err)
		}
		plugins = append(plugins, plugin)
	}

	return Config{
		plugins: plugins,
		server:  b.server,
	}, nil
}
