// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user account carries.
type Role string

const (
	// RoleCustomer is the default role assigned at registration.
	RoleCustomer Role = "CUSTOMER"
	// RoleAdmin indicates an administrator of the storefront backend.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}
