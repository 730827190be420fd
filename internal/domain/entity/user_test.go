package entity

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_PublicViewStripsCredentials(t *testing.T) {
	user := &User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "super-secret-hash",
		Role:         RoleCustomer,
		IsActive:     true,
		FirstName:    "Ada",
		LastName:     "Lovelace",
	}

	view := user.PublicView()
	assert.Equal(t, user.ID, view.ID)
	assert.Equal(t, user.Email, view.Email)
	assert.Equal(t, user.Role, view.Role)
	assert.Equal(t, user.FirstName, view.FirstName)

	// The serialized projection must never leak the hash.
	payload, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "super-secret-hash")
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleCustomer.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("SUPERUSER").IsValid())
	assert.False(t, Role("").IsValid())
}
