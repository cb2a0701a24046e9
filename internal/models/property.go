package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyType is the kind of real estate
type PropertyType string

const (
	PropertyTypePiso   PropertyType = "Piso"
	PropertyTypeCasa   PropertyType = "Casa"
	PropertyTypeLocal  PropertyType = "Local"
	PropertyTypeGaraje PropertyType = "Garaje"
)

// PropertyStatus is the informational rental status of a property.
// It is maintained by hand and never derived from tenants.
type PropertyStatus string

const (
	PropertyStatusRented PropertyStatus = "Alquilado"
	PropertyStatusVacant PropertyStatus = "Vacío"
)

// Valid reports whether t is a known property type
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypePiso, PropertyTypeCasa, PropertyTypeLocal, PropertyTypeGaraje:
		return true
	}
	return false
}

// Valid reports whether s is a known property status
func (s PropertyStatus) Valid() bool {
	return s == PropertyStatusRented || s == PropertyStatusVacant
}

// Property represents a piece of real estate owned by the account
type Property struct {
	ID            string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Address       string         `gorm:"size:255;not null" json:"address"`
	City          string         `gorm:"size:128" json:"city"`
	Type          PropertyType   `gorm:"size:16;not null" json:"type"`
	Status        PropertyStatus `gorm:"size:16;not null" json:"status"`
	PurchasePrice float64        `json:"purchasePrice"`
	Image         string         `gorm:"type:text" json:"image"`
	Documents     Documents      `json:"documents"`
	CreatedAt     time.Time      `json:"-"`
	UpdatedAt     time.Time      `json:"-"`
}

// TableName overrides the table name for Property
func (Property) TableName() string {
	return "properties"
}

// BeforeCreate assigns a UUID when the caller did not supply one
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// DocumentList exposes the attached documents for in-place edits
func (p *Property) DocumentList() *Documents {
	return &p.Documents
}
