package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempFile(t, "config.json", `{
		"app": {"version": "1.2.3", "session_duration": "24h", "password_iterations": 1000},
		"storage": {"db": {"dsn": "postgres://x/y", "migrate": true}},
		"server": {"http_address": "127.0.0.1:9000", "request_timeout": 5000000000},
		"dev": {"client_dir": "dist", "no_metrics": true}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, 24*time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, 1000, cfg.App.PasswordIterations)
	assert.Equal(t, "postgres://x/y", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Storage.DB.Migrate)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "dist", cfg.Dev.ClientDir)
	assert.True(t, cfg.Dev.NoMetrics)
}

func TestParseFile_YAML(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.YML"} {
		t.Run(name, func(t *testing.T) {
			path := writeTempFile(t, name, `
app:
  log_level: warn
  session_duration: 30m
server:
  request_timeout: 1000000000
dev:
  api_target: http://api:8000
  no_live_reload: true
`)

			cfg, err := parseFile(path)
			require.NoError(t, err)
			assert.Equal(t, "warn", cfg.App.LogLevel)
			assert.Equal(t, 30*time.Minute, cfg.App.SessionDuration)
			assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
			assert.Equal(t, "http://api:8000", cfg.Dev.APITarget)
			assert.True(t, cfg.Dev.NoLiveReload)
		})
	}
}

func TestParseFile_Malformed(t *testing.T) {
	_, err := parseFile(writeTempFile(t, "bad.json", "{"))
	assert.Error(t, err)

	_, err = parseFile(writeTempFile(t, "bad.yaml", "app: [unclosed"))
	assert.Error(t, err)
}

func TestParseFile_BadDuration(t *testing.T) {
	_, err := parseFile(writeTempFile(t, "bad.json", `{"app": {"session_duration": "forever"}}`))
	assert.Error(t, err)

	_, err = parseFile(writeTempFile(t, "bad.yaml", "app:\n  session_duration: forever\n"))
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
