// Package server wires the auth subsystem into an HTTP server: a Gin
// engine carrying the middleware chain, the /api/auth endpoints, and
// graceful start/stop with h2c support.
package server
