package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/gestorinmo/internal/config"
	"github.com/localnerve/gestorinmo/internal/services"
	"github.com/localnerve/gestorinmo/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminHandler handles maintenance routes
type AdminHandler struct {
	Data *services.DataService
	Sync Syncer
	Log  *zap.Logger
}

// Seed handles POST /api/admin/seed
// @Summary Load sample data
// @Description Create the sample properties, tenants and expenses. Not atomic.
// @Tags Admin
// @Produce json
// @Success 201 {object} services.SeedResult
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /admin/seed [post]
func (h *AdminHandler) Seed(c *fiber.Ctx) error {
	result, err := h.Data.Seed(c.UserContext())
	syncAfterWrite(c, h.Sync, store.Collections...)
	if err != nil {
		h.Log.Error("seed failed", zap.Any("created", result), zap.Error(err))
		return serviceError(c, err, "seed")
	}

	h.Log.Info("sample data loaded", zap.Any("created", result))
	return c.Status(fiber.StatusCreated).JSON(result)
}

// HealthHandler serves the health endpoint
type HealthHandler struct {
	Config *config.Config
	DB     *gorm.DB
	Log    *zap.Logger
}

// Health handles GET /health
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(c.UserContext(), h.Config, h.DB, h.Log)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
