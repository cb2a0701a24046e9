// expenses.go
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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/gestorinmo/internal/dashboard"
	"github.com/localnerve/gestorinmo/internal/models"
	"github.com/localnerve/gestorinmo/internal/services"
	"github.com/localnerve/gestorinmo/internal/store"
	"github.com/localnerve/gestorinmo/internal/types"
	"github.com/localnerve/gestorinmo/internal/utils"
)

// ExpenseHandler handles expense routes
type ExpenseHandler struct {
	Data   *services.DataService
	Engine *dashboard.Engine
	Sync   Syncer
}

// ListExpenses handles GET /api/expenses
// @Summary List expenses
// @Tags Expenses
// @Produce json
// @Param propertyId query string false "Only expenses of this property"
// @Success 200 {array} models.Expense
// @Security CookieAuth
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *fiber.Ctx) error {
	propertyID := c.Query("propertyId")
	expenses := make([]models.Expense, 0)
	for _, e := range h.Engine.Snapshot().Expenses {
		if propertyID == "" || e.PropertyID == propertyID {
			expenses = append(expenses, e)
		}
	}
	return c.Status(fiber.StatusOK).JSON(expenses)
}

// CreateExpenses handles POST /api/expenses
// @Summary Create expenses
// @Description Create one expense, or several when the body is an array
// @Tags Expenses
// @Accept json
// @Produce json
// @Param body body models.Expense true "Expense or array of expenses"
// @Success 201 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpenses(c *fiber.Ctx) error {
	var body types.FlexList[models.Expense]
	if err := c.BodyParser(&body); err != nil || len(body) == 0 {
		return invalidInput(c)
	}

	created, err := h.Data.CreateExpenses(c.UserContext(), body.Slice())
	if len(created) > 0 {
		syncAfterWrite(c, h.Sync, store.Expenses)
	}
	if err != nil {
		return serviceError(c, err, "createExpenses")
	}

	ids := make([]string, 0, len(created))
	for _, e := range created {
		ids = append(ids, e.ID)
	}
	return utils.MutationSuccessResponse(c, fiber.StatusCreated, ids)
}

// ReplaceExpense handles PUT /api/expenses/:id
// @Summary Replace expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param body body models.Expense true "Expense"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) ReplaceExpense(c *fiber.Ctx) error {
	var body models.Expense
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c)
	}

	updated, err := h.Data.ReplaceExpense(c.UserContext(), c.Params("id"), body)
	if err != nil {
		return serviceError(c, err, "replaceExpense")
	}

	syncAfterWrite(c, h.Sync, store.Expenses)
	return utils.MutationSuccessResponse(c, fiber.StatusOK, []string{updated.ID})
}

// DeleteExpense handles DELETE /api/expenses/:id
// @Summary Delete expense
// @Tags Expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Data.DeleteExpense(c.UserContext(), id); err != nil {
		return serviceError(c, err, "deleteExpense")
	}

	syncAfterWrite(c, h.Sync, store.Expenses)
	return utils.MutationSuccessResponse(c, fiber.StatusOK, []string{id})
}
