// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"customo/internal/domain/entity"

	"github.com/google/uuid"
)

// Sentinel errors for the identity store.
// The application layer matches on these without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when no record matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when an insert or update collides with the
	// unique constraint on email.
	ErrEmailTaken = errors.New("email already taken")
)

// UserRepository is the identity store contract the authentication core
// depends on. The storage layer enforces uniqueness on email; a constraint
// rejection surfaces as ErrEmailTaken so the race between the orchestrator's
// existence check and the insert is closed at the storage boundary.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address (exact match).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user record.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user record.
	Update(ctx context.Context, user *entity.User) error
}
