// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"customo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// UpdateProfileInput defines the mutable profile fields. Email, role and
// credentials are not writable through this path.
type UpdateProfileInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
}

// --- Output DTOs ---

// AuthOutput returns a bearer token together with the public projection of
// the account it was issued for.
type AuthOutput struct {
	Token string             `json:"token"`
	User  *entity.PublicUser `json:"user"`
}

// AuthUsecase defines the authentication core's business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
// Failure modes are typed domain errors, never inferred from message text.
type AuthUsecase interface {
	// Register creates a new credential record and issues a token for it.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies a credential pair and issues a fresh token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Authenticate resolves a bearer token back to the account it names.
	Authenticate(ctx context.Context, token string) (*entity.User, error)

	// ChangePassword replaces the stored hash after verifying the current
	// password. Outstanding tokens stay valid until their own expiry.
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error

	// UpdateProfile overwrites the mutable profile fields only.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.PublicUser, error)
}
