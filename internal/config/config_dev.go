package config

import "fmt"

// DevConfig is the dev-server view of [StructuredConfig].
type DevConfig struct {
	// LogLevel is a zerolog level name.
	LogLevel string
	// ClientDir is the directory with built client assets.
	ClientDir string
	// WatchDir is the directory watched for live reload.
	WatchDir string
	// APITarget is the API base URL that /api requests are proxied to.
	APITarget string
	// LiveReload enables the live reload plugin.
	LiveReload bool
	// Metrics enables the metrics plugin.
	Metrics bool
}

// GetDevConfig builds and validates the dev-server configuration from the
// merged structured configuration.
func GetDevConfig() (*DevConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devCfg := newDevConfig(cfg)
	return devCfg, devCfg.validate()
}

func newDevConfig(cfg *StructuredConfig) *DevConfig {
	return &DevConfig{
		LogLevel:   cfg.App.LogLevel,
		ClientDir:  cfg.Dev.ClientDir,
		WatchDir:   cfg.Dev.WatchDir,
		APITarget:  cfg.Dev.APITarget,
		LiveReload: !cfg.Dev.NoLiveReload,
		Metrics:    !cfg.Dev.NoMetrics,
	}
}
