// Package devserver runs the client development server described by a
// devconfig.Config.
//
// The configuration is read once, when Run starts. Plugins are applied in
// declaration order through optional capability interfaces: Middleware wraps
// the handler chain (the first plugin is outermost), RouteRegistrar mounts
// routes on the chi router and Starter runs background work for as long as
// the server is up. A plugin with none of these is accepted and logged as
// inert.
package devserver
