package config

import "time"

// Built-in defaults. They form the lowest-priority layer.
const (
	DefaultHTTPAddress        = "127.0.0.1:8000"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultSessionDuration    = 604800 * time.Second
	DefaultPasswordIterations = 600_000
	DefaultVersion            = "dev"
	DefaultLogLevel           = "debug"
	DefaultEnvFile            = ".env"

	DefaultClientDir = "packages/client/build"
	DefaultWatchDir  = "packages/client/src"
	DefaultAPITarget = "http://127.0.0.1:8000"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:            DefaultVersion,
			LogLevel:           DefaultLogLevel,
			SessionDuration:    DefaultSessionDuration,
			PasswordIterations: DefaultPasswordIterations,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Dev: Dev{
			ClientDir: DefaultClientDir,
			WatchDir:  DefaultWatchDir,
			APITarget: DefaultAPITarget,
		},
		EnvFilePath: DefaultEnvFile,
	}
}
