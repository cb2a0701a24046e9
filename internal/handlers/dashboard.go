package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/gestorinmo/internal/dashboard"
	"github.com/localnerve/gestorinmo/internal/utils"
)

// DashboardHandler serves the derived metrics and alerts
type DashboardHandler struct {
	Engine *dashboard.Engine
}

// GetDashboard handles GET /api/dashboard
// @Summary Get dashboard
// @Description Get the headline metrics, alerts and rent-by-tenant series
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dashboard.View
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Engine.View())
}

// GetAlerts handles GET /api/alerts
// @Summary Get alerts
// @Description Get contract expiry and CPI review alerts
// @Tags Dashboard
// @Produce json
// @Success 200 {array} dashboard.Alert
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /alerts [get]
func (h *DashboardHandler) GetAlerts(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Engine.View().Alerts)
}

// GetPropertyFinancials handles GET /api/properties/:id/financials
// @Summary Get property financials
// @Description Get total expenses, annual revenue estimate and expense history of a property
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} dashboard.PropertyFinancials
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /properties/{id}/financials [get]
func (h *DashboardHandler) GetPropertyFinancials(c *fiber.Ctx) error {
	id := c.Params("id")
	financials, ok := h.Engine.Financials(id)
	if !ok {
		return utils.NotFoundResponse(c, fmt.Sprintf("Property '%s' not found", id))
	}
	return c.Status(fiber.StatusOK).JSON(financials)
}
