package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel mirrors the 'stores' table. Both the store name and the owner
// reference carry unique constraints; an owner manages at most one store.
type StoreModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(100);unique;not null"`
	Description    string    `gorm:"type:text"`
	LogoURL        string    `gorm:"type:text"`
	AddressStreet  string    `gorm:"type:varchar(255)"`
	AddressCity    string    `gorm:"type:varchar(100)"`
	AddressCountry string    `gorm:"type:varchar(100)"`
	ContactEmail   string    `gorm:"type:varchar(255)"`
	ContactPhone   string    `gorm:"type:varchar(50)"`
	OwnerID        uuid.UUID `gorm:"type:uuid;unique;not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
