// Package config provides configuration loading, merging, and validation
// for the forum API server and the client dev server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. A .env file (only fills variables that are not already set)
//  3. Environment variables
//  4. Command-line flags
//  5. A JSON or YAML config file
//
// The main entry points are [GetStructuredConfig] for the API server and
// [GetDevConfig] for the dev server.
package config
