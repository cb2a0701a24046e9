package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseCategory classifies an expense
type ExpenseCategory string

const (
	ExpenseCategoryRepair    ExpenseCategory = "Reparación"
	ExpenseCategoryCommunity ExpenseCategory = "Comunidad"
	ExpenseCategoryInsurance ExpenseCategory = "Seguro"
	ExpenseCategoryTaxes     ExpenseCategory = "Impuestos"
	ExpenseCategoryOther     ExpenseCategory = "Otros"
)

// ExpenseCategories lists the known categories in display order
var ExpenseCategories = []ExpenseCategory{
	ExpenseCategoryRepair,
	ExpenseCategoryCommunity,
	ExpenseCategoryInsurance,
	ExpenseCategoryTaxes,
	ExpenseCategoryOther,
}

// Valid reports whether c is a known category
func (c ExpenseCategory) Valid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is a cost booked against a property.
// PropertyID is not enforced, expenses may outlive their property.
type Expense struct {
	ID          string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID  string          `gorm:"type:varchar(36);index" json:"propertyId"`
	Amount      float64         `gorm:"not null;default:0" json:"amount"`
	Category    ExpenseCategory `gorm:"size:32;not null" json:"category"`
	Date        string          `gorm:"size:32;index" json:"date"`
	Description string          `gorm:"size:255" json:"description"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// TableName overrides the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}

// BeforeCreate assigns a UUID when the caller did not supply one
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
