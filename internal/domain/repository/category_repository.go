package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category lookup matches nothing.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines read access to category reference data plus the
// create operation used by seed tooling. The request path never mutates
// categories.
type CategoryRepository interface {
	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByNameLike retrieves the first category whose name contains the
	// given fragment, case-insensitively.
	FindByNameLike(ctx context.Context, name string) (*entity.Category, error)

	// Create persists a new category. Used by out-of-band seeding only.
	Create(ctx context.Context, category *entity.Category) error
}
