package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing database DSN (neither
	// STORAGE_DB_DATABASE_URI nor PG_DBNAME was provided).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing API address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates missing session or password settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidDevConfigs indicates an unusable dev server configuration
	// (no client dir, no watch dir with live reload on, or a bad API target).
	ErrInvalidDevConfigs = errors.New("invalid dev server configuration")
	// ErrInvalidFlags wraps command-line parsing failures.
	ErrInvalidFlags = errors.New("invalid command-line flags")
)
