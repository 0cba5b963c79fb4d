package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// IdentityUsecase resolves a bearer token to a role-tagged identity. The
// resolver performs read lookups only and is safe to call once per request.
type IdentityUsecase interface {
	// Resolve validates the token, loads the account, and for store-owning
	// roles attaches the managed-store affiliation. Any failure along the
	// chain is an authentication failure (401).
	Resolve(ctx context.Context, token string) (*entity.Identity, error)
}
