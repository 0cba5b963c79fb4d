package entity

import "github.com/google/uuid"

// Identity is the per-request view of an authenticated actor: the role-tagged
// result of resolving a bearer token. It never carries credentials.
type Identity struct {
	ID           uuid.UUID     // The authenticated user's ID.
	Name         string        // Display name, for logging and response shaping.
	Email        string        // Login email.
	Role         Role          // The actor's role.
	ManagedStore *ManagedStore // The store this actor manages, if any. Nil for buyers and unaffiliated owners.
}

// ManagedStore is the slim store affiliation attached to a resolved identity.
type ManagedStore struct {
	ID       uuid.UUID
	Name     string
	LogoURL  string
	IsActive bool
}
