package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when a store lookup matches nothing.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the standard operations for store persistence.
type StoreRepository interface {
	// FindByID retrieves a single store by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindByOwner retrieves the store managed by the given identity, if any.
	// At most one store exists per owner (ownerId is unique).
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error)

	// List returns all stores in storage order.
	List(ctx context.Context) ([]*entity.Store, error)

	// Create persists a new store. Uniqueness of name and ownerId is enforced
	// by the underlying store and surfaced as a conflict error.
	Create(ctx context.Context, store *entity.Store) error

	// Update modifies an existing store.
	Update(ctx context.Context, store *entity.Store) error

	// Delete removes a store by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
