// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. It carries the credential hash for the
// persistence layer; the hash is stripped before a user ever leaves the
// service boundary (see Identity for the per-request view).
type User struct {
	ID           uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the user.
	Name         string    `json:"name"`      // The user's display name.
	Email        string    `json:"email"`     // The user's login identifier, unique per account.
	PasswordHash string    `json:"-"`         // The bcrypt hash of the user's password. Never serialized outward.
	Role         Role      `json:"role"`      // The user's role. Immutable after creation.
	Phone        string    `json:"phone"`     // Optional contact phone number.
	Addresses    []Address `json:"addresses"` // Optional shipping/billing addresses.
	CreatedAt    time.Time `json:"createdAt"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updatedAt"` // Timestamp of the last modification.
}

// Address is a simple postal address value.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Contact holds the reachable contact points of a store.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}
