// common.go
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
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/gestorinmo/internal/services"
	"github.com/localnerve/gestorinmo/internal/store"
	"github.com/localnerve/gestorinmo/internal/types"
	"github.com/localnerve/gestorinmo/internal/utils"
)

// Syncer refreshes a collection of the snapshot store after a write
type Syncer interface {
	Refresh(ctx context.Context, c store.Collection) error
}

// ErrorHandler renders every unhandled error with the standard error envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	var ce *types.CustomError
	if errors.As(err, &ce) {
		code = ce.Code
		message = ce.Message
		errorType = ce.Type
	}

	return utils.ErrorResponse(c, message, code, errorType)
}

// NotFound is the catch-all handler for unknown routes
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}

// serviceError maps service errors onto HTTP responses
func serviceError(c *fiber.Ctx, err error, errorType string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalid):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "data.validation.input")
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}

func invalidInput(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "data.validation.input")
}

// syncAfterWrite refreshes the written collection so the next read sees the write.
// Refresh failures are logged by the feed and leave the previous snapshot in place.
func syncAfterWrite(c *fiber.Ctx, s Syncer, collections ...store.Collection) {
	if s == nil {
		return
	}
	for _, col := range collections {
		_ = s.Refresh(c.UserContext(), col)
	}
}
