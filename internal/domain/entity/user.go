// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential record at the heart of the authentication core.
// It combines the login identity (email + password hash) with the mutable
// storefront profile fields.
type User struct {
	ID           uuid.UUID // The unique subject identifier, generated at creation and never changed.
	Email        string    // The login handle. Unique across all records, matched exactly as stored.
	PasswordHash string    // Serialized hash produced by a PasswordHasher. Never the plaintext.
	Role         Role      // Role tag. Defaults to RoleCustomer; not writable through profile updates.
	IsActive     bool      // Inactive accounts are rejected at login even with correct credentials.

	// Mutable profile fields. No uniqueness constraints.
	FirstName string
	LastName  string
	Phone     string
	Company   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicView strips credential material from the record for responses.
func (u *User) PublicView() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Company:   u.Company,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the externally visible projection of a User.
// It never carries the password hash.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"createdAt"`
}
