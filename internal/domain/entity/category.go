package entity

import "github.com/google/uuid"

// Category is flat reference data for grouping products. Categories are
// created by seed/admin tooling and read-only from the request path.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}
