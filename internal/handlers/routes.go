package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/gestorinmo/internal/ai"
	"github.com/localnerve/gestorinmo/internal/config"
	"github.com/localnerve/gestorinmo/internal/dashboard"
	"github.com/localnerve/gestorinmo/internal/middleware"
	"github.com/localnerve/gestorinmo/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps is everything the route handlers need
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Data   *services.DataService
	Engine *dashboard.Engine
	Sync   Syncer
	AI     *ai.Service
	Log    *zap.Logger
}

// RegisterRoutes mounts /health on app and the data API under /api behind auth
func RegisterRoutes(app *fiber.App, d Deps, auth fiber.Handler) {
	health := &HealthHandler{Config: d.Config, DB: d.DB, Log: d.Log}
	app.Get("/health", health.Health)

	api := app.Group("/api", middleware.VersionMiddleware(), auth)

	dash := &DashboardHandler{Engine: d.Engine}
	api.Get("/dashboard", dash.GetDashboard)
	api.Get("/alerts", dash.GetAlerts)

	props := &PropertyHandler{Data: d.Data, Engine: d.Engine, Sync: d.Sync}
	api.Get("/properties", props.ListProperties)
	api.Post("/properties", props.CreateProperty)
	api.Put("/properties/:id", props.ReplaceProperty)
	api.Delete("/properties/:id", props.DeleteProperty)
	api.Get("/properties/:id/financials", dash.GetPropertyFinancials)
	api.Post("/properties/:id/documents", props.AddDocument)
	api.Delete("/properties/:id/documents/:docId", props.DeleteDocument)

	tenants := &TenantHandler{Data: d.Data, Engine: d.Engine, Sync: d.Sync}
	api.Get("/tenants", tenants.ListTenants)
	api.Post("/tenants", tenants.CreateTenant)
	api.Put("/tenants/:id", tenants.ReplaceTenant)
	api.Delete("/tenants/:id", tenants.DeleteTenant)
	api.Post("/tenants/:id/documents", tenants.AddDocument)
	api.Delete("/tenants/:id/documents/:docId", tenants.DeleteDocument)

	expenses := &ExpenseHandler{Data: d.Data, Engine: d.Engine, Sync: d.Sync}
	api.Get("/expenses", expenses.ListExpenses)
	api.Post("/expenses", expenses.CreateExpenses)
	api.Put("/expenses/:id", expenses.ReplaceExpense)
	api.Delete("/expenses/:id", expenses.DeleteExpense)

	aiHandler := &AIHandler{AI: d.AI, Engine: d.Engine}
	api.Post("/ai/receipt", aiHandler.ExtractReceipt)
	api.Post("/ai/email", aiHandler.DraftEmail)

	admin := &AdminHandler{Data: d.Data, Sync: d.Sync, Log: d.Log}
	api.Post("/admin/seed", admin.Seed)
}
