package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStoreInput defines the data accepted for standalone store creation.
type CreateStoreInput struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description" validate:"required"`
	LogoURL     string         `json:"logo"`
	Address     entity.Address `json:"address"`
	Contact     entity.Contact `json:"contact"`
	OwnerID     uuid.UUID      `json:"ownerId" validate:"required"`
}

// UpdateStoreInput carries the mutable store fields. Nil means "leave
// unchanged". OwnerID is absent: ownership does not transfer through update.
type UpdateStoreInput struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	LogoURL     *string         `json:"logo"`
	Address     *entity.Address `json:"address"`
	Contact     *entity.Contact `json:"contact"`
	IsActive    *bool           `json:"isActive"`
}

// ProvisionSellerInput is the composite seller-plus-store provisioning
// payload. All listed fields are required; validation reports every missing
// field at once.
type ProvisionSellerInput struct {
	Name        string         `json:"name" validate:"required"`
	Email       string         `json:"email" validate:"required,email"`
	Password    string         `json:"password" validate:"required"`
	Description string         `json:"description" validate:"required"`
	StoreName   string         `json:"store_name" validate:"required"`
	Contact     entity.Contact `json:"contact"`
	Address     entity.Address `json:"address"`
}

// ProvisionSellerOutput is the minimal provisioning summary. It never echoes
// the password, even hashed.
type ProvisionSellerOutput struct {
	UserName  string `json:"user_name"`
	Email     string `json:"email"`
	StoreName string `json:"store_name"`
}

// StoreUsecase defines store management operations. Every operation is gated
// through the ownership policy engine (store management is admin-exclusive).
type StoreUsecase interface {
	Create(ctx context.Context, identity *entity.Identity, input *CreateStoreInput) (*entity.Store, error)
	List(ctx context.Context, identity *entity.Identity) ([]*entity.Store, error)
	Get(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Store, error)
	Update(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *UpdateStoreInput) (*entity.Store, error)
	Deactivate(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Store, error)
	Delete(ctx context.Context, identity *entity.Identity, id uuid.UUID) error

	// ProvisionSeller creates a seller identity and its store in two
	// independent writes. A store-creation failure leaves the new seller
	// without a store; the caller retries store creation separately.
	ProvisionSeller(ctx context.Context, identity *entity.Identity, input *ProvisionSellerInput) (*ProvisionSellerOutput, error)
}
