// data_delete.go
//
// Property management dashboard service for small landlords
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of gestorinmo.
// gestorinmo is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// gestorinmo is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with gestorinmo.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"fmt"

	"github.com/localnerve/gestorinmo/internal/models"
)

// DeleteProperty removes a property. Tenants and expenses that reference it are kept.
func (s *DataService) DeleteProperty(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &models.Property{}, "property", id)
}

// DeleteTenant removes a tenant
func (s *DataService) DeleteTenant(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &models.Tenant{}, "tenant", id)
}

// DeleteExpense removes an expense
func (s *DataService) DeleteExpense(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &models.Expense{}, "expense", id)
}

func (s *DataService) deleteByID(ctx context.Context, model interface{}, kind, id string) error {
	result := s.DB.WithContext(ctx).Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
