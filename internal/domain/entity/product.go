package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item belonging to exactly one store. StoreID is
// stamped from the creator's managed store at creation time and never
// changes afterwards.
type Product struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the product.
	Name        string    `json:"name"`        // The product's display name.
	Description string    `json:"description"` // The product's description.
	Price       float64   `json:"price"`       // Unit price, non-negative.
	Images      []string  `json:"images"`      // Ordered list of image URIs.
	CategoryID  uuid.UUID `json:"category"`    // Reference to the product's category.
	Brand       string    `json:"brand"`       // Optional brand name.
	StoreID     uuid.UUID `json:"storeId"`     // The store this product belongs to. Immutable after creation.
	CreatedByID uuid.UUID `json:"createdById"` // The identity that created this product.
	Stock       int       `json:"stock"`       // Units in stock, non-negative.
	Rating      float64   `json:"rating"`      // Aggregate rating, 0 to 5.
	Reviews     []Review  `json:"reviews"`     // Customer reviews.
	CreatedAt   time.Time `json:"createdAt"`   // Timestamp of when this product was created.
	UpdatedAt   time.Time `json:"updatedAt"`   // Timestamp of the last modification.
}

// Review is a single customer review embedded in a product.
type Review struct {
	UserID  uuid.UUID `json:"userId"`
	Comment string    `json:"comment"`
	Rating  float64   `json:"rating"`
}
