// Package token signs, verifies and decodes the compact signed credential
// used by the auth subsystem.
//
// Tokens are HS256 JWTs carrying {userId, email, iat, exp} with a fixed
// 24-hour lifetime. Verification failures are distinguishable sentinels:
// ErrTokenMalformed (structural), ErrTokenInvalid (cryptographic) and
// ErrTokenExpired (temporal) are the only recoverable validation outcomes.
//
// Decode parses the payload without checking the signature. It exists for
// diagnostics only and must never be used to authorize anything.
package token
