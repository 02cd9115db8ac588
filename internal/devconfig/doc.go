// Package devconfig assembles the configuration value handed to the
// development server at startup.
//
// A [Config] is built once from an ordered list of [PluginFactory] results and
// a [Server] binding descriptor. The builder passes every value through as
// supplied: it performs no defaulting, normalisation or validation, and it
// does not recover from factory failures. Whatever is wrong with the bind
// address is reported later by the runtime that tries to listen on it.
//
// The project's own configuration is produced by [Default]; the entry point in
// cmd/devserver calls it exactly once and passes the result to the runtime.
package devconfig
