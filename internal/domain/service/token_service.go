// Package service defines interfaces for core, stateless domain logic.
package service

import (
	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the identity payload carried by a bearer token.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the token format from the use cases.
type TokenService interface {
	// Generate creates a signed token carrying the user's ID and role.
	Generate(userID uuid.UUID, role entity.Role) (string, error)

	// Validate checks a token string and returns its claims. The failure is
	// opaque: callers treat any validation error as an invalid credential.
	Validate(tokenString string) (*Claims, error)
}
