// Package service defines the ports for stateless domain logic that does not
// belong to a single entity, such as credential hashing and token issuance.
package service

// PasswordHasher hashes and verifies business account passwords. The domain
// only ever sees plaintext going in and an opaque hash string coming out;
// the algorithm behind it lives in the infra layer.
type PasswordHasher interface {
	// Hash derives a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
