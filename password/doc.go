// Package password provides one-way password hashing and strength policy.
//
// Hashing uses bcrypt with a randomized per-call salt, so hashing the same
// password twice yields different digests. Verification never returns an
// error: an empty password, an empty digest or a structurally invalid digest
// simply do not verify.
//
//	hasher := password.NewHasher(password.Config{})
//	digest, err := hasher.Hash("Str0ng!pass")
//	ok := hasher.Verify("Str0ng!pass", digest)
//
// Strength validation is separate from hashing and reports every violated
// rule at once, in a fixed order.
package password
