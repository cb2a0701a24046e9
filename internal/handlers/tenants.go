package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/gestorinmo/internal/dashboard"
	"github.com/localnerve/gestorinmo/internal/models"
	"github.com/localnerve/gestorinmo/internal/services"
	"github.com/localnerve/gestorinmo/internal/store"
	"github.com/localnerve/gestorinmo/internal/utils"
)

// TenantHandler handles tenant routes
type TenantHandler struct {
	Data   *services.DataService
	Engine *dashboard.Engine
	Sync   Syncer
}

// TenantView is a tenant with the address of its property resolved
type TenantView struct {
	models.Tenant
	PropertyAddress string `json:"propertyAddress"`
}

// ListTenants handles GET /api/tenants
// @Summary List tenants
// @Description List tenants with their property address, "Sin asignar" when unassigned
// @Tags Tenants
// @Produce json
// @Success 200 {array} TenantView
// @Security CookieAuth
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *fiber.Ctx) error {
	snap := h.Engine.Snapshot()
	views := make([]TenantView, 0, len(snap.Tenants))
	for _, t := range snap.Tenants {
		views = append(views, TenantView{
			Tenant:          t,
			PropertyAddress: dashboard.ResolvePropertyAddress(snap.Properties, t.PropertyID),
		})
	}
	return c.Status(fiber.StatusOK).JSON(views)
}

// CreateTenant handles POST /api/tenants
// @Summary Create tenant
// @Tags Tenants
// @Accept json
// @Produce json
// @Param body body models.Tenant true "Tenant"
// @Success 201 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *fiber.Ctx) error {
	var body models.Tenant
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c)
	}

	created, err := h.Data.CreateTenant(c.UserContext(), body)
	if err != nil {
		return serviceError(c, err, "createTenant")
	}

	syncAfterWrite(c, h.Sync, store.Tenants)
	return utils.MutationSuccessResponse(c, fiber.StatusCreated, []string{created.ID})
}

// ReplaceTenant handles PUT /api/tenants/:id
// @Summary Replace tenant
// @Tags Tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param body body models.Tenant true "Tenant"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /tenants/{id} [put]
func (h *TenantHandler) ReplaceTenant(c *fiber.Ctx) error {
	var body models.Tenant
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c)
	}

	updated, err := h.Data.ReplaceTenant(c.UserContext(), c.Params("id"), body)
	if err != nil {
		return serviceError(c, err, "replaceTenant")
	}

	syncAfterWrite(c, h.Sync, store.Tenants)
	return utils.MutationSuccessResponse(c, fiber.StatusOK, []string{updated.ID})
}

// DeleteTenant handles DELETE /api/tenants/:id
// @Summary Delete tenant
// @Tags Tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Data.DeleteTenant(c.UserContext(), id); err != nil {
		return serviceError(c, err, "deleteTenant")
	}

	syncAfterWrite(c, h.Sync, store.Tenants)
	return utils.MutationSuccessResponse(c, fiber.StatusOK, []string{id})
}

// AddDocument handles POST /api/tenants/:id/documents
// @Summary Attach tenant document
// @Tags Tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param body body models.Document true "Document"
// @Success 201 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /tenants/{id}/documents [post]
func (h *TenantHandler) AddDocument(c *fiber.Ctx) error {
	var body models.Document
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c)
	}

	doc, err := h.Data.AddTenantDocument(c.UserContext(), c.Params("id"), body)
	if err != nil {
		return serviceError(c, err, "addTenantDocument")
	}

	syncAfterWrite(c, h.Sync, store.Tenants)
	return utils.MutationSuccessResponse(c, fiber.StatusCreated, []string{doc.ID})
}

// DeleteDocument handles DELETE /api/tenants/:id/documents/:docId
// @Summary Detach tenant document
// @Tags Tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Param docId path string true "Document ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /tenants/{id}/documents/{docId} [delete]
func (h *TenantHandler) DeleteDocument(c *fiber.Ctx) error {
	docID := c.Params("docId")
	if err := h.Data.DeleteTenantDocument(c.UserContext(), c.Params("id"), docID); err != nil {
		return serviceError(c, err, "deleteTenantDocument")
	}

	syncAfterWrite(c, h.Sync, store.Tenants)
	return utils.MutationSuccessResponse(c, fiber.StatusOK, []string{docID})
}
