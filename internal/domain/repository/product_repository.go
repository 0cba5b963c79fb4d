package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product lookup matches nothing.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter is the query predicate produced by the product scope filter.
// Zero values mean "no restriction" for the corresponding field.
type ProductFilter struct {
	// StoreID restricts results to a single store when non-nil.
	StoreID *uuid.UUID
	// NameSearch is a case-insensitive substring match on the product name.
	NameSearch string
	// CategoryID is an equality filter on the resolved category.
	CategoryID *uuid.UUID
	// MatchNone forces the predicate to match nothing. Set when a category
	// filter was requested but no category resolved; the listing then yields
	// zero results instead of ignoring the filter.
	MatchNone bool
	// MinPrice and MaxPrice bound the price range, inclusive and
	// independently optional.
	MinPrice *float64
	MaxPrice *float64
	// Brand is a case-insensitive substring match on the brand.
	Brand string
}

// ProductSort selects a single sort field and direction. The zero value means
// storage order.
type ProductSort struct {
	Field string
	Desc  bool
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of products matching the filter, before
	// pagination is applied.
	Count(ctx context.Context, filter ProductFilter) (int64, error)

	// Query returns the products matching the filter, sorted and paginated.
	Query(ctx context.Context, filter ProductFilter, sort ProductSort, offset, limit int) ([]*entity.Product, error)
}
