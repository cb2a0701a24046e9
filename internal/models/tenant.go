package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant represents a lessee and the terms of their contract
type Tenant struct {
	ID                 string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name               string    `gorm:"size:255;not null" json:"name"`
	DNI                string    `gorm:"column:dni;size:32" json:"dni"`
	Email              string    `gorm:"size:255" json:"email"`
	Phone              string    `gorm:"size:64" json:"phone"`
	ContractStart      string    `gorm:"size:32" json:"contractStart"`
	ContractEnd        string    `gorm:"size:32" json:"contractEnd"`
	MonthlyRent        float64   `gorm:"not null;default:0" json:"monthlyRent"`
	CPIAdjustmentMonth int       `gorm:"column:cpi_adjustment_month;not null;default:1" json:"cpiAdjustmentMonth"`
	PropertyID         *string   `gorm:"type:varchar(36);index" json:"propertyId"`
	Documents          Documents `json:"documents"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`
}

// TableName overrides the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// BeforeCreate assigns a UUID when the caller did not supply one
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// AssignedTo reports whether the tenant references the given property
func (t Tenant) AssignedTo(propertyID string) bool {
	return t.PropertyID != nil && *t.PropertyID == propertyID
}

// DocumentList exposes the attached documents for in-place edits
func (t *Tenant) DocumentList() *Documents {
	return &t.Documents
}
