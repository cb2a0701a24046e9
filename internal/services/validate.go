package services

import (
	"strings"
	"time"

	"github.com/localnerve/gestorinmo/internal/models"
)

// DateLayout is the storage format of every date field
const DateLayout = "2006-01-02"

func validDate(value string) bool {
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

// ValidateProperty checks a property before it is written
func ValidateProperty(p models.Property) error {
	if strings.TrimSpace(p.Address) == "" {
		return invalidf("address is required")
	}
	if !p.Type.Valid() {
		return invalidf("unknown property type %q", p.Type)
	}
	if !p.Status.Valid() {
		return invalidf("unknown property status %q", p.Status)
	}
	if p.PurchasePrice < 0 {
		return invalidf("purchasePrice must not be negative")
	}
	return validateDocuments(p.Documents)
}

// ValidateTenant checks a tenant before it is written
func ValidateTenant(t models.Tenant) error {
	if strings.TrimSpace(t.Name) == "" {
		return invalidf("name is required")
	}
	if t.MonthlyRent < 0 {
		return invalidf("monthlyRent must not be negative")
	}
	if t.CPIAdjustmentMonth < 1 || t.CPIAdjustmentMonth > 12 {
		return invalidf("cpiAdjustmentMonth must be between 1 and 12")
	}
	for field, value := range map[string]string{"contractStart": t.ContractStart, "contractEnd": t.ContractEnd} {
		if value != "" && !validDate(value) {
			return invalidf("%s must be a YYYY-MM-DD date", field)
		}
	}
	return validateDocuments(t.Documents)
}

// ValidateExpense checks an expense before it is written
func ValidateExpense(e models.Expense) error {
	if e.Amount < 0 {
		return invalidf("amount must not be negative")
	}
	if !e.Category.Valid() {
		return invalidf("unknown expense category %q", e.Category)
	}
	if !validDate(e.Date) {
		return invalidf("date must be a YYYY-MM-DD date")
	}
	return nil
}

// ValidateDocument checks a document before it is attached
func ValidateDocument(d models.Document) error {
	if strings.TrimSpace(d.Name) == "" {
		return invalidf("document name is required")
	}
	if !d.Type.Valid() {
		return invalidf("unknown document type %q", d.Type)
	}
	if d.Date != "" && !validDate(d.Date) {
		return invalidf("document date must be a YYYY-MM-DD date")
	}
	return nil
}

func validateDocuments(docs models.Documents) error {
	for _, d := range docs {
		if err := ValidateDocument(d); err != nil {
			return err
		}
	}
	return nil
}
