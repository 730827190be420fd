package auth

import (
	"crypto/sha256"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"customo/config"
	"customo/internal/domain/service"
)

// hmacMinKeyLength is the minimum raw secret length for HS256. Shorter
// secrets are stretched, never truncated or padded.
const hmacMinKeyLength = 32

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The derived key is computed once at construction and never mutated.
type jwtService struct {
	key      []byte
	lifetime time.Duration
}

// NewJWTService is the constructor for jwtService.
// It derives the signing key from the configured secret: a secret shorter
// than 32 bytes is stretched deterministically with SHA-256 so the same
// configured secret always yields the same key across restarts.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	secret := cfg.Auth.SigningSecret
	if secret == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}
	if cfg.IsProduction() && secret == config.DefaultSigningSecret {
		return nil, errors.New("jwt signing secret must be changed from the default in production")
	}

	key := []byte(secret)
	if len(key) < hmacMinKeyLength {
		sum := sha256.Sum256(key)
		key = sum[:]
	}

	lifetime := cfg.Auth.TokenTTL
	if lifetime <= 0 {
		lifetime = 7 * 24 * time.Hour
	}

	return &jwtService{key: key, lifetime: lifetime}, nil
}

// Issue creates a signed bearer token for the given subject identity.
func (s *jwtService) Issue(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ParseSubject verifies the signature and expiry of a token and returns its
// subject identity. Expiry is compared exactly; no leeway window is applied.
func (s *jwtService) ParseSubject(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return uuid.Nil, errors.New("token is not valid")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to read subject claim")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid subject claim")
	}

	return userID, nil
}

// Lifetime returns the configured token lifetime.
func (s *jwtService) Lifetime() time.Duration {
	return s.lifetime
}
