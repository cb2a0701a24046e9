package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/localnerve/gestorinmo/internal/ai"
	"github.com/localnerve/gestorinmo/internal/config"
	"github.com/localnerve/gestorinmo/internal/dashboard"
	"github.com/localnerve/gestorinmo/internal/database"
	"github.com/localnerve/gestorinmo/internal/feed"
	"github.com/localnerve/gestorinmo/internal/handlers"
	"github.com/localnerve/gestorinmo/internal/logger"
	"github.com/localnerve/gestorinmo/internal/middleware"
	"github.com/localnerve/gestorinmo/internal/services"
	"github.com/localnerve/gestorinmo/internal/store"
	"github.com/localnerve/gestorinmo/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	_ "github.com/localnerve/gestorinmo/docs/api" // Swagger docs
)

// bodyLimit leaves room for receipt photos and embedded documents
const bodyLimit = 16 * 1024 * 1024

// @title Gestorinmo API
// @version 1.0.0
// @description Property management dashboard for small landlords
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/gestorinmo
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// A .env file is optional, the environment wins
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Snapshot store, dashboard engine and metrics
	snapshots := store.New()
	engine := dashboard.NewEngine(snapshots)
	defer engine.Close()

	gauges, err := telemetry.NewGauges(prometheus.DefaultRegisterer)
	if err != nil {
		zlog.Fatal("Failed to register dashboard gauges", zap.Error(err))
	}
	engine.Observe(gauges.Observe)

	dbFeed := feed.New(db, snapshots, zlog.Named("feed"), cfg.SyncInterval)
	go dbFeed.Run(ctx)

	assistant := newAssistant(ctx, cfg, zlog)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    bodyLimit,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	// Prometheus metrics, the dashboard gauges share the default registry
	prom := fiberprometheus.New("gestorinmo")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.RegisterRoutes(app, handlers.Deps{
		Config: cfg,
		DB:     db,
		Data:   services.NewDataService(db, cfg.MaxDocumentBytes),
		Engine: engine,
		Sync:   dbFeed,
		AI:     assistant,
		Log:    zlog,
	}, middleware.AuthUser(cfg, zlog.Named("auth")))

	app.Use(handlers.NotFound)

	// Graceful shutdown
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigs
		zlog.Info("Gracefully shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	zlog.Info("Starting server", zap.String("port", cfg.Port), zap.Bool("ai", assistant.Enabled()))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}

	zlog.Info("Server stopped")
}

// newAssistant returns an AI service, disabled when no key is configured or the client fails
func newAssistant(ctx context.Context, cfg *config.Config, zlog *zap.Logger) *ai.Service {
	aiLog := zlog.Named("ai")
	if !cfg.AIEnabled() {
		aiLog.Warn("GEMINI_API_KEY not set, AI features disabled")
		return ai.NewService(nil, aiLog)
	}

	model, err := ai.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		aiLog.Error("Failed to create Gemini client, AI features disabled", zap.Error(err))
		return ai.NewService(nil, aiLog)
	}
	return ai.NewService(model, aiLog)
}
