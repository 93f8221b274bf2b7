// Package http implements the HTTP transport layer of the fuel dashboard.
//
// It exposes the top-level router, the dashboard route table, request
// handlers and middleware. Authentication, role checks, request tracing,
// access logging and response compression are handled in this package
// before requests are delegated to the service layer.
package http
