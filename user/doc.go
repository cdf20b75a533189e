// Package user defines the user identity record and its repository contract.
//
// The password hash never leaves the server boundary: User excludes it from
// JSON and every service-level response uses the Sanitized projection.
//
// Two Repository implementations are provided: a gorm-backed store for
// production and an in-memory fake for tests.
package user
