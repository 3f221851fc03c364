// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// listen port and the timeouts applied to the Fiber application.
//
// # Configuration
//
// The Config struct defines the HTTP port and the read, write and shutdown timeouts.
// The write timeout also bounds object streams, so it defaults to a generous value.
//
// # Usage
//
// This package is embedded by core/config and consumed by cmd/start.go.
package server
