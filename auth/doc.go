// Package auth implements the account operations: registration with
// password-strength enforcement and login with token issuance.
//
// Login is enumeration-safe: an unknown email and a wrong password produce
// the same UNAUTHORIZED error, so a caller cannot probe which addresses
// have accounts.
package auth
