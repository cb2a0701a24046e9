package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/localnerve/gestorinmo/internal/media"
	"github.com/localnerve/gestorinmo/internal/models"
	"gorm.io/gorm"
)

// DefaultMaxDocumentBytes is the largest embedded document accepted, in characters
const DefaultMaxDocumentBytes = 1048487

// DataService writes properties, tenants and expenses.
// Reads go through the sync feed, so a write is visible to readers after the next refresh.
type DataService struct {
	DB               *gorm.DB
	MaxDocumentBytes int
}

// NewDataService creates a DataService, a zero limit selects DefaultMaxDocumentBytes
func NewDataService(db *gorm.DB, maxDocumentBytes int) *DataService {
	if maxDocumentBytes <= 0 {
		maxDocumentBytes = DefaultMaxDocumentBytes
	}
	return &DataService{DB: db, MaxDocumentBytes: maxDocumentBytes}
}

// CreateProperty stores a new property under a fresh id
func (s *DataService) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	p.ID = ""
	if err := s.prepareProperty(&p); err != nil {
		return models.Property{}, err
	}
	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return models.Property{}, fmt.Errorf("failed to create property: %w", err)
	}
	return p, nil
}

// ReplaceProperty overwrites every field of an existing property
func (s *DataService) ReplaceProperty(ctx context.Context, id string, p models.Property) (models.Property, error) {
	p.ID = id
	if err := s.prepareProperty(&p); err != nil {
		return models.Property{}, err
	}
	if err := s.replace(ctx, &models.Property{}, id, &p); err != nil {
		return models.Property{}, err
	}
	return p, nil
}

// CreateTenant stores a new tenant under a fresh id
func (s *DataService) CreateTenant(ctx context.Context, t models.Tenant) (models.Tenant, error) {
	t.ID = ""
	if err := s.prepareTenant(&t); err != nil {
		return models.Tenant{}, err
	}
	if err := s.DB.WithContext(ctx).Create(&t).Error; err != nil {
		return models.Tenant{}, fmt.Errorf("failed to create tenant: %w", err)
	}
	return t, nil
}

// ReplaceTenant overwrites every field of an existing tenant
func (s *DataService) ReplaceTenant(ctx context.Context, id string, t models.Tenant) (models.Tenant, error) {
	t.ID = id
	if err := s.prepareTenant(&t); err != nil {
		return models.Tenant{}, err
	}
	if err := s.replace(ctx, &models.Tenant{}, id, &t); err != nil {
		return models.Tenant{}, err
	}
	return t, nil
}

// CreateExpenses stores new expenses one by one.
// Every input is validated before anything is written.
func (s *DataService) CreateExpenses(ctx context.Context, expenses []models.Expense) ([]models.Expense, error) {
	for i := range expenses {
		expenses[i].ID = ""
		if err := ValidateExpense(expenses[i]); err != nil {
			return nil, fmt.Errorf("expense %d: %w", i, err)
		}
	}

	created := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if err := s.DB.WithContext(ctx).Create(&e).Error; err != nil {
			return created, fmt.Errorf("failed to create expense: %w", err)
		}
		created = append(created, e)
	}
	return created, nil
}

// ReplaceExpense overwrites every field of an existing expense
func (s *DataService) ReplaceExpense(ctx context.Context, id string, e models.Expense) (models.Expense, error) {
	e.ID = id
	if err := ValidateExpense(e); err != nil {
		return models.Expense{}, err
	}
	if err := s.replace(ctx, &models.Expense{}, id, &e); err != nil {
		return models.Expense{}, err
	}
	return e, nil
}

// replace saves record over the row with id, keeping its creation time
func (s *DataService) replace(ctx context.Context, existing interface{}, id string, record interface{}) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(existing, "id = ?", id).Error; err != nil {
			return notFound(err)
		}
		return tx.Model(existing).Select("*").Omit("id", "created_at").Updates(record).Error
	})
}

func (s *DataService) prepareProperty(p *models.Property) error {
	if err := ValidateProperty(*p); err != nil {
		return err
	}
	image, err := media.CompressDataURL(p.Image)
	if err != nil {
		return invalidf("image: %v", err)
	}
	p.Image = image
	return s.prepareDocuments(p.Documents)
}

func (s *DataService) prepareTenant(t *models.Tenant) error {
	if t.PropertyID != nil && strings.TrimSpace(*t.PropertyID) == "" {
		t.PropertyID = nil
	}
	if err := ValidateTenant(*t); err != nil {
		return err
	}
	return s.prepareDocuments(t.Documents)
}
