package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/gestorinmo/internal/dashboard"
	"github.com/localnerve/gestorinmo/internal/models"
	"github.com/localnerve/gestorinmo/internal/services"
	"github.com/localnerve/gestorinmo/internal/store"
	"github.com/localnerve/gestorinmo/internal/utils"
)

// PropertyHandler handles property routes
type PropertyHandler struct {
	Data   *services.DataService
	Engine *dashboard.Engine
	Sync   Syncer
}

// ListProperties handles GET /api/properties
// @Summary List properties
// @Tags Properties
// @Produce json
// @Success 200 {array} models.Property
// @Security CookieAuth
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *fiber.Ctx) error {
	props := h.Engine.Snapshot().Properties
	if props == nil {
		props = []models.Property{}
	}
	return c.Status(fiber.StatusOK).JSON(props)
}

// CreateProperty handles POST /api/properties
// @Summary Create property
// @Tags Properties
// @Accept json
// @Produce json
// @Param body body models.Property true "Property"
// @Success 201 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *fiber.Ctx) error {
	var body models.Property
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c)
	}

	created, err := h.Data.CreateProperty(c.UserContext(), body)
	if err != nil {
		return serviceError(c, err, "createProperty")
	}

	syncAfterWrite(c, h.Sync, store.Properties)
	return utils.MutationSuccessResponse(c, fiber.StatusCreated, []string{created.ID})
}

// ReplaceProperty handles PUT /api/properties/:id
// @Summary Replace property
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param body body models.Property true "Property"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /properties/{id} [put]
func (h *PropertyHandler) ReplaceProperty(c *fiber.Ctx) error {
	var body models.Property
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c)
	}

	updated, err := h.Data.ReplaceProperty(c.UserContext(), c.Params("id"), body)
	if err != nil {
		return serviceError(c, err, "replaceProperty")
	}

	syncAfterWrite(c, h.Sync, store.Properties)
	return utils.MutationSuccessResponse(c, fiber.StatusOK, []string{updated.ID})
}

// DeleteProperty handles DELETE /api/properties/:id
// @Summary Delete property
// @Description Delete a property. Tenants and expenses referencing it are kept.
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Data.DeleteProperty(c.UserContext(), id); err != nil {
		return serviceError(c, err, "deleteProperty")
	}

	syncAfterWrite(c, h.Sync, store.Properties)
	return utils.MutationSuccessResponse(c, fiber.StatusOK, []string{id})
}

// AddDocument handles POST /api/properties/:id/documents
// @Summary Attach property document
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param body body models.Document true "Document"
// @Success 201 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /properties/{id}/documents [post]
func (h *PropertyHandler) AddDocument(c *fiber.Ctx) error {
	var body models.Document
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c)
	}

	doc, err := h.Data.AddPropertyDocument(c.UserContext(), c.Params("id"), body)
	if err != nil {
		return serviceError(c, err, "addPropertyDocument")
	}

	syncAfterWrite(c, h.Sync, store.Properties)
	return utils.MutationSuccessResponse(c, fiber.StatusCreated, []string{doc.ID})
}

// DeleteDocument handles DELETE /api/properties/:id/documents/:docId
// @Summary Detach property document
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Param docId path string true "Document ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /properties/{id}/documents/{docId} [delete]
func (h *PropertyHandler) DeleteDocument(c *fiber.Ctx) error {
	docID := c.Params("docId")
	if err := h.Data.DeletePropertyDocument(c.UserContext(), c.Params("id"), docID); err != nil {
		return serviceError(c, err, "deletePropertyDocument")
	}

	syncAfterWrite(c, h.Sync, store.Properties)
	return utils.MutationSuccessResponse(c, fiber.StatusOK, []string{docID})
}
