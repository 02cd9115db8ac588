package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of a JSON or YAML config file.
type StructuredFileConfig struct {
	App struct {
		Version            string   `json:"version" yaml:"version"`
		LogLevel           string   `json:"log_level" yaml:"log_level"`
		SessionSignKey     string   `json:"session_sign_key" yaml:"session_sign_key"`
		SessionDuration    Duration `json:"session_duration" yaml:"session_duration"`
		PasswordIterations int      `json:"password_iterations" yaml:"password_iterations"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN     string `json:"dsn" yaml:"dsn"`
			Migrate bool   `json:"migrate" yaml:"migrate"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Dev struct {
		ClientDir    string `json:"client_dir" yaml:"client_dir"`
		WatchDir     string `json:"watch_dir" yaml:"watch_dir"`
		APITarget    string `json:"api_target" yaml:"api_target"`
		NoLiveReload bool   `json:"no_live_reload" yaml:"no_live_reload"`
		NoMetrics    bool   `json:"no_metrics" yaml:"no_metrics"`
	} `json:"dev,omitempty" yaml:"dev,omitempty"`
}

// parseFile decodes a config file; ".yaml" and ".yml" are read as YAML,
// anything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer f.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(f).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (fc *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:            fc.App.Version,
			LogLevel:           fc.App.LogLevel,
			SessionSignKey:     fc.App.SessionSignKey,
			SessionDuration:    time.Duration(fc.App.SessionDuration),
			PasswordIterations: fc.App.PasswordIterations,
		},
		Storage: Storage{
			DB: DB{
				DSN:     fc.Storage.DB.DSN,
				Migrate: fc.Storage.DB.Migrate,
			},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Dev: Dev{
			ClientDir:    fc.Dev.ClientDir,
			WatchDir:     fc.Dev.WatchDir,
			APITarget:    fc.Dev.APITarget,
			NoLiveReload: fc.Dev.NoLiveReload,
			NoMetrics:    fc.Dev.NoMetrics,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!int" {
		var n int64
		if err := value.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
