package services

import (
	"context"
	"fmt"

	"github.com/localnerve/gestorinmo/internal/config"
	"github.com/localnerve/gestorinmo/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Authorizer   string            `json:"authorizer"`
	AI           string            `json:"ai"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck checks the database and the Authorizer service.
// A missing AI key is reported but does not make the service unhealthy.
func HealthCheck(ctx context.Context, cfg *config.Config, db *gorm.DB, log *zap.Logger) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	fail := func(component, detailKey string, err error, format string) {
		result.Status = "unhealthy"
		result.Details[detailKey] = err.Error()
		msg := fmt.Sprintf(format, err)
		if result.ErrorMessage == "" {
			result.ErrorMessage = msg
		} else {
			result.ErrorMessage += "; " + msg
		}
		log.Warn("health check failed", zap.String("component", component), zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Database = "error"
		fail("database", "database_error", err, "Database connection error: %v")
	} else if err := sqlDB.PingContext(ctx); err != nil {
		result.Database = "unreachable"
		fail("database", "database_ping_error", err, "Database ping failed: %v")
	} else {
		result.Database = "ok"
		result.Details["database_type"] = cfg.DBType
		result.Details["database_name"] = cfg.DBDatabase
	}

	if err := utils.PingServiceContext(ctx, cfg.AuthzURL, utils.AuthorizerPingTimeout); err != nil {
		result.Authorizer = "unreachable"
		fail("authorizer", "authorizer_error", err, "Authorizer ping failed: %v")
	} else {
		result.Authorizer = "ok"
		result.Details["authorizer_url"] = cfg.AuthzURL
	}

	if cfg.AIEnabled() {
		result.AI = "configured"
		result.Details["ai_model"] = cfg.GeminiModel
	} else {
		result.AI = "disabled"
	}

	if result.Status == "healthy" {
		log.Debug("health check passed")
	}

	return result
}
