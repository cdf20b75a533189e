// Package middleware provides the Gin middleware chain for the auth
// subsystem: request identification, panic recovery, the edge route guard
// and the bearer authenticator.
//
// The route guard and the bearer authenticator split the work by trust
// level. The guard runs at the edge without the signing secret and does
// structural checks only; the authenticator holds the secret and performs
// full cryptographic verification plus a user re-fetch.
package middleware
