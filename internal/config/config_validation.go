// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "net/url"

// validate checks that the merged [StructuredConfig] has everything the API
// server needs at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.SessionSignKey == "" || cfg.App.SessionDuration <= 0 || cfg.App.PasswordIterations <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *DevConfig) validate() error {
	if cfg.ClientDir == "" {
		return ErrInvalidDevConfigs
	}

	if cfg.LiveReload && cfg.WatchDir == "" {
		return ErrInvalidDevConfigs
	}

	target, err := url.Parse(cfg.APITarget)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return ErrInvalidDevConfigs
	}

	return nil
}
