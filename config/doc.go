// Package config loads and validates application configuration.
//
// Configuration is assembled from an optional YAML file, an optional .env
// file, and environment variables (prefix AUTHKIT_), in that order of
// precedence. The result is an explicit immutable Config passed into each
// component at construction. Leaf packages never read ambient environment
// state, which keeps tests deterministic with per-test secrets.
package config
