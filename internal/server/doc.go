// Package server runs the HTTP transport of the fuel dashboard.
//
// It owns the [http.Server] lifecycle: startup, waiting for the application
// context to be cancelled, and graceful shutdown with a bounded drain period.
package server
