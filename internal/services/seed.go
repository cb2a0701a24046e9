package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/localnerve/gestorinmo/data"
	"github.com/localnerve/gestorinmo/internal/models"
)

// SeedResult counts the records written by Seed
type SeedResult struct {
	Properties int `json:"properties"`
	Tenants    int `json:"tenants"`
	Expenses   int `json:"expenses"`
}

type seedData struct {
	Properties []models.Property `json:"properties"`
	Tenants    []struct {
		models.Tenant
		Property int `json:"property"`
	} `json:"tenants"`
	Expenses []struct {
		models.Expense
		Property int `json:"property"`
	} `json:"expenses"`
}

// Seed writes the embedded sample data set with independent sequential creates.
// It is not atomic: on failure the records already written stay, and the result counts them.
func (s *DataService) Seed(ctx context.Context) (SeedResult, error) {
	var result SeedResult

	var sample seedData
	if err := json.Unmarshal(data.SeedJSON, &sample); err != nil {
		return result, fmt.Errorf("failed to read sample data: %w", err)
	}

	ids := make([]string, 0, len(sample.Properties))
	for _, p := range sample.Properties {
		created, err := s.CreateProperty(ctx, p)
		if err != nil {
			return result, fmt.Errorf("seed property %q: %w", p.Address, err)
		}
		ids = append(ids, created.ID)
		result.Properties++
	}

	for _, t := range sample.Tenants {
		tenant := t.Tenant
		if t.Property >= 0 && t.Property < len(ids) {
			tenant.PropertyID = &ids[t.Property]
		}
		if _, err := s.CreateTenant(ctx, tenant); err != nil {
			return result, fmt.Errorf("seed tenant %q: %w", tenant.Name, err)
		}
		result.Tenants++
	}

	for _, e := range sample.Expenses {
		expense := e.Expense
		if e.Property >= 0 && e.Property < len(ids) {
			expense.PropertyID = ids[e.Property]
		}
		if _, err := s.CreateExpenses(ctx, []models.Expense{expense}); err != nil {
			return result, fmt.Errorf("seed expense %q: %w", expense.Description, err)
		}
		result.Expenses++
	}

	return result, nil
}
