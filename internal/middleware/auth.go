package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/gestorinmo/internal/config"
	"github.com/localnerve/gestorinmo/internal/services"
	"github.com/localnerve/gestorinmo/internal/types"
	"go.uber.org/zap"
)

// SessionCookie is the Authorizer session cookie name
const SessionCookie = "cookie_session"

// SessionValidator checks a session cookie for a set of roles and returns the session user
type SessionValidator func(cookie string, roles []string) (interface{}, error)

// AuthUser requires a valid user session.
// The Authorizer client is created lazily from the first request's protocol and host.
func AuthUser(cfg *config.Config, log *zap.Logger) fiber.Handler {
	validate := func(cookie string, roles []string) (interface{}, error) {
		return services.ValidateSession(cookie, roles)
	}
	return func(c *fiber.Ctx) error {
		if !services.IsAuthorizerInitialized() {
			if err := services.InitAuthorizer(cfg, log, c.Protocol(), c.Hostname()); err != nil {
				log.Error("authorizer unavailable", zap.Error(err))
				return types.NewCustomError(fiber.StatusServiceUnavailable, "data.authorization.user",
					"Authorizer unavailable: %v", err)
			}
		}
		return authorize(c, validate, []string{"user"}, "data.authorization.user")
	}
}

// RequireSession guards routes with an explicit validator
func RequireSession(validate SessionValidator, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, validate, roles, "data.authorization.user")
	}
}

// authorize performs the authorization check
func authorize(c *fiber.Ctx, validate SessionValidator, roles []string, errorType string) error {
	session := c.Cookies(SessionCookie)
	if session == "" {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Authorizer cookie %q not found", SessionCookie),
			Type:    errorType,
		}
	}

	user, err := validate(session, roles)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Invalid session: %v", err),
			Type:    errorType,
		}
	}

	c.Locals("user", user)
	return c.Next()
}
