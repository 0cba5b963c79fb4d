package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a seller's storefront. Exactly one identity manages a store and an
// identity manages at most one store: OwnerID is unique across stores.
type Store struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the store.
	Name        string    `json:"name"`        // The store's display name, unique across the platform.
	Description string    `json:"description"` // A description of the store and its products.
	LogoURL     string    `json:"logo"`        // URL of the store's logo image.
	Address     Address   `json:"address"`     // The store's physical address.
	Contact     Contact   `json:"contact"`     // The store's contact points.
	OwnerID     uuid.UUID `json:"ownerId"`     // The identity permitted to manage this store's catalog.
	IsActive    bool      `json:"isActive"`    // Soft-disable flag; an inactive store cannot receive new products.
	CreatedAt   time.Time `json:"createdAt"`   // Timestamp of when this store was created.
	UpdatedAt   time.Time `json:"updatedAt"`   // Timestamp of the last modification.
}
