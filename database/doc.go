// Package database opens and manages the GORM connection backing the user
// repository: sqlite driver, connection pooling, retry on startup, and
// auto-migration of the auth schema.
//
// The connection is owned here and injected into repositories; no package
// imports a shared database singleton.
package database
