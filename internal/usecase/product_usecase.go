package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data accepted for product creation. Any
// store or creator reference in the payload is ignored; the policy engine's
// scope is stamped instead.
type CreateProductInput struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
	Images      []string  `json:"images"`
	CategoryID  uuid.UUID `json:"category" validate:"required"`
	Brand       string    `json:"brand"`
	Stock       int       `json:"stock" validate:"gte=0"`
}

// UpdateProductInput carries the mutable product fields. Nil means "leave
// unchanged". StoreID and CreatedByID are deliberately absent: a product's
// store affiliation never changes after creation.
type UpdateProductInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Price       *float64   `json:"price" validate:"omitempty,gte=0"`
	Images      []string   `json:"images"`
	CategoryID  *uuid.UUID `json:"category"`
	Brand       *string    `json:"brand"`
	Stock       *int       `json:"stock" validate:"omitempty,gte=0"`
}

// ListProductsInput carries the raw listing filters as received from the
// query string.
type ListProductsInput struct {
	Search   string
	Category string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
	Order    string
	Page     int
	Limit    int
}

// ProductPage is one page of listing results together with the pagination
// facts needed for the response envelope.
type ProductPage struct {
	Items []*entity.Product
	Page  int
	Limit int
	Total int64
}

// ProductUsecase defines catalog operations. Mutations flow through the
// ownership policy engine; listings flow through the product scope filter.
type ProductUsecase interface {
	Create(ctx context.Context, identity *entity.Identity, input *CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, identity *entity.Identity, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, identity *entity.Identity, productID uuid.UUID) error

	// Get returns a single product. Public.
	Get(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// ListAll is the public catalog browse: the predicate spans all stores
	// regardless of who asks.
	ListAll(ctx context.Context, input *ListProductsInput) (*ProductPage, error)

	// ListStore restricts the predicate to the caller's managed store and
	// fails with a forbidden error when the caller has none.
	ListStore(ctx context.Context, identity *entity.Identity, input *ListProductsInput) (*ProductPage, error)
}
