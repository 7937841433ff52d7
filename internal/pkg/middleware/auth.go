package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/krishilink/krishilink/internal/pkg/models"
	"github.com/krishilink/krishilink/internal/pkg/token"
	"github.com/krishilink/krishilink/internal/utils"
)

// identityKey is the echo context key the authenticated identity is stored
// under between the authentication middleware and the handler.
const identityKey = "authenticated_user"

// authenticate verifies the request's bearer session token, stores the
// identity in the context and returns it. On any failure it writes the 401
// response and returns nil.
func authenticate(c echo.Context, cfg models.JWTConfig) (*models.AuthenticatedUser, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, utils.UnauthorizedResponse(c, "Authentication required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, utils.UnauthorizedResponse(c, "Invalid authorization format")
	}

	identity := token.VerifySession(parts[1], cfg.Secret)
	if identity == nil {
		return nil, utils.UnauthorizedResponse(c, "Invalid or expired token")
	}

	c.Set(identityKey, identity)
	return identity, nil
}

// RequireAuth creates a middleware that authenticates the request from its
// bearer session token. A missing or malformed header and any verification
// failure short-circuit with 401; the handler is never invoked.
func RequireAuth(cfg models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := authenticate(c, cfg)
			if identity == nil {
				return err
			}
			return next(c)
		}
	}
}

// RequireRole creates a middleware enforcing a role allow-list. It is
// self-sufficient: when no authenticated identity is in the context yet it
// authenticates the request itself, so authentication always runs before
// the role check regardless of registration order.
func RequireRole(cfg models.JWTConfig, roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := AuthenticatedUser(c)
			if identity == nil {
				var err error
				identity, err = authenticate(c, cfg)
				if identity == nil {
					return err
				}
			}
			if _, ok := allowed[identity.Role]; !ok {
				return utils.ForbiddenResponse(c, "Insufficient permissions")
			}
			return next(c)
		}
	}
}

// AuthenticatedUser extracts the verified identity set by RequireAuth.
// Returns nil when the request was not authenticated.
func AuthenticatedUser(c echo.Context) *models.AuthenticatedUser {
	if identity, ok := c.Get(identityKey).(*models.AuthenticatedUser); ok {
		return identity
	}
	return nil
}
