package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validStructuredConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Storage.DB.DSN = "postgres://localhost/forum"
	cfg.App.SessionSignKey = "secret"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.App.SessionSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no iterations", mutate: func(c *StructuredConfig) { c.App.PasswordIterations = 0 }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDevConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     DevConfig
		wantErr bool
	}{
		{name: "valid", cfg: DevConfig{ClientDir: "dist", WatchDir: "src", APITarget: "http://127.0.0.1:8000", LiveReload: true}},
		{name: "no watch dir without live reload", cfg: DevConfig{ClientDir: "dist", APITarget: "http://127.0.0.1:8000"}},
		{name: "no client dir", cfg: DevConfig{APITarget: "http://127.0.0.1:8000"}, wantErr: true},
		{name: "no watch dir with live reload", cfg: DevConfig{ClientDir: "dist", APITarget: "http://127.0.0.1:8000", LiveReload: true}, wantErr: true},
		{name: "relative api target", cfg: DevConfig{ClientDir: "dist", APITarget: "/api"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDevConfigs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewDevConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Dev.NoMetrics = true

	dev := newDevConfig(cfg)
	assert.Equal(t, DefaultClientDir, dev.ClientDir)
	assert.Equal(t, DefaultWatchDir, dev.WatchDir)
	assert.Equal(t, DefaultAPITarget, dev.APITarget)
	assert.Equal(t, DefaultLogLevel, dev.LogLevel)
	assert.True(t, dev.LiveReload)
	assert.False(t, dev.Metrics)
	assert.NoError(t, dev.validate())
}

func TestPostgres_DSN(t *testing.T) {
	assert.Empty(t, Postgres{User: "u"}.DSN())
	assert.Equal(t, "postgres://localhost:5432/forum?sslmode=disable", Postgres{DBName: "forum"}.DSN())
	assert.Equal(t, "postgres://u:p@db:6543/forum?sslmode=disable",
		Postgres{Host: "db", Port: 6543, DBName: "forum", User: "u", Password: "p"}.DSN())
}
