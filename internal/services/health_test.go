package services

import (
	"context"
	"testing"

	"github.com/localnerve/gestorinmo/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHealthCheckUnreachableAuthorizer(t *testing.T) {
	cfg := &config.Config{
		DBType:     "sqlite3",
		DBDatabase: ":memory:",
		AuthzURL:   "http://127.0.0.1:1",
	}

	result := HealthCheck(context.Background(), cfg, setupTestDB(t), zap.NewNop())

	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "unreachable", result.Authorizer)
	assert.Equal(t, "disabled", result.AI)
	assert.Contains(t, result.ErrorMessage, "Authorizer ping failed")
}

func TestValidateSessionWithoutClient(t *testing.T) {
	if IsAuthorizerInitialized() {
		t.Skip("authorizer initialized by another test")
	}
	_, err := ValidateSession("cookie", []string{"user"})
	assert.Error(t, err)
}
