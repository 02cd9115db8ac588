package devconfig

const (
	// DefaultHost is the loopback interface the client dev server binds to.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the client dev server port.
	DefaultPort = 5173
)

// Default builds the project's dev-server configuration: the framework
// integration plugin followed by any extra plugins, bound to
// DefaultHost:DefaultPort.
//
// It is meant to be called once by the process entry point. Calling it again
// with the same factories yields a structurally equal Config.
func Default(framework PluginFactory, extra ...PluginFactory) (Config, error) {
	return NewBuilder().
		WithPlugins(framework).
		WithPlugins(extra...).
		WithServer(DefaultHost, DefaultPort).
		Build()
}
