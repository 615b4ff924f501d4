// Package service declares the capabilities the usecases need from the outside
// world: hashing, signing, mail delivery and slip rendering.
package service

// PasswordHasher turns account passwords into stored digests.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password produces hash. A malformed hash is a mismatch.
	Check(password, hash string) bool
}
