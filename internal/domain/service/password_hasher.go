// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing scheme, keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. It fails only
	// on an underlying randomness or algorithm fault, which callers treat as
	// fatal.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash. Malformed
	// stored data yields false, never an error or panic.
	Check(password, hash string) bool
}
