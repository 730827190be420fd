package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"

	"customo/internal/domain/service"
)

const (
	// saltLength is the number of random bytes mixed into every hash.
	saltLength = 16
	// hashSeparator joins the encoded salt and digest. It cannot appear in
	// standard base64 output, so splitting on it is unambiguous.
	hashSeparator = "$"
)

// sha256Hasher implements PasswordHasher with a per-record random salt and a
// single SHA-256 pass over salt||plaintext, serialized as
// base64(salt) + "$" + base64(digest). It matches the storage format of the
// storefront's earlier deployments; bcrypt is the default for new installs.
type sha256Hasher struct{}

// NewSHA256Hasher is the constructor for sha256Hasher.
func NewSHA256Hasher() service.PasswordHasher {
	return &sha256Hasher{}
}

// Hash draws a fresh 16-byte salt from crypto/rand and digests salt||password.
// The only possible failure is the entropy source; callers treat it as fatal.
func (h *sha256Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to read random salt")
	}

	digest := digestWithSalt(salt, password)

	return base64.StdEncoding.EncodeToString(salt) + hashSeparator +
		base64.StdEncoding.EncodeToString(digest), nil
}

// Check recomputes the digest for the stored salt and compares it in constant
// time. Malformed stored data (wrong field count, bad encoding, wrong digest
// length) yields false rather than an error, so corrupt records read as "not
// authenticated" and nothing more.
func (h *sha256Hasher) Check(password, hash string) bool {
	parts := strings.Split(hash, hashSeparator)
	if len(parts) != 2 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	stored, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	computed := digestWithSalt(salt, password)

	// ConstantTimeCompare walks the full length regardless of where the
	// inputs first differ; a length mismatch is decided on lengths alone.
	return subtle.ConstantTimeCompare(computed, stored) == 1
}

func digestWithSalt(salt []byte, password string) []byte {
	sum := sha256.New()
	sum.Write(salt)
	sum.Write([]byte(password))

	return sum.Sum(nil)
}
