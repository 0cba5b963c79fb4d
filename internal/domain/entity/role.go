// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
// The set is closed; policy evaluation matches exhaustively on it so a
// mistyped role string can never silently pass a gate.
type Role string

const (
	// RoleAdmin indicates a platform administrator. Admins manage stores and
	// may also operate a store catalog of their own.
	RoleAdmin Role = "admin"
	// RoleSeller indicates a store-owning seller.
	RoleSeller Role = "seller"
	// RoleBuyer indicates a regular shopper with read-only catalog access.
	RoleBuyer Role = "buyer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleBuyer:
		return true
	default:
		return false
	}
}

// CanOwnStore reports whether the role is capable of managing a store catalog.
// Admin and seller are functionally equivalent store-owner roles.
func (r Role) CanOwnStore() bool {
	return r == RoleAdmin || r == RoleSeller
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
