package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, expiring bearer token binding the given subject
	// identity. The email travels as an extra claim.
	Issue(userID uuid.UUID, email string) (string, error)

	// ParseSubject verifies a token's signature, structure and expiry, and
	// returns the subject identity it was issued for. Any failure returns a
	// non-nil error; signature and expiry checks both run on every call.
	ParseSubject(token string) (uuid.UUID, error)

	// Lifetime returns the fixed token lifetime from issuance.
	Lifetime() time.Duration
}
