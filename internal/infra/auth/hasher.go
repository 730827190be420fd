package auth

import (
	"customo/config"
	"customo/internal/domain/service"
)

// NewHasher selects the password hasher configured for this deployment.
// bcrypt is the default; the salted-SHA-256 scheme remains available for
// installations that still carry hashes in the legacy format.
func NewHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth != nil && cfg.Auth.HashScheme == config.HashSchemeSHA256 {
		return NewSHA256Hasher()
	}

	var cost int
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasher(cost)
}
