// Package credential persists the client-side credential bundle: the signed
// token plus an unsigned {userId, email} copy of its claims.
//
// The bundle is stored as JSON in a single cookie (or any Storage backend).
// Retrieval is fail-closed: anything short of a fully verified, internally
// consistent bundle purges the stored value and reports no credential. A
// mismatch between the unsigned copy and the signed claims signals tampering
// and invalidates the whole bundle.
package credential
