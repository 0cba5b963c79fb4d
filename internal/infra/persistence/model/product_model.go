package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. StoreID and CreatedByID are
// written once at creation and never updated afterwards.
type ProductModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string         `gorm:"type:varchar(255);not null;index"`
	Description string         `gorm:"type:text;not null"`
	Price       float64        `gorm:"type:decimal(12,2);not null"`
	Images      datatypes.JSON `gorm:"type:jsonb"`
	CategoryID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Brand       string         `gorm:"type:varchar(100);index"`
	StoreID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedByID uuid.UUID      `gorm:"type:uuid;not null"`
	Stock       int            `gorm:"not null;default:0"`
	Rating      float64        `gorm:"type:decimal(3,2);not null;default:0"`
	Reviews     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
