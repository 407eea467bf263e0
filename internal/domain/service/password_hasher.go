// Package service defines ports to infrastructure capabilities the
// application layer needs but does not implement itself.
package service

// PasswordHasher abstracts the one-way hashing applied to user passwords
// before they are persisted.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
