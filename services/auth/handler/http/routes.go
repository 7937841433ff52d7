package http

import (
	"github.com/labstack/echo/v4"

	"github.com/krishilink/krishilink/internal/pkg/middleware"
	"github.com/krishilink/krishilink/internal/pkg/models"
)

// Handler bundles the HTTP handlers of the auth service
type Handler struct {
	authHandler *AuthHandler
	userHandler *UserHandler
	cfg         *models.Config
}

// NewHandler creates the route registrar
func NewHandler(authHandler *AuthHandler, userHandler *UserHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the auth service API routes. Authentication
// always runs before the role check on admin routes.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public authentication routes
	e.POST("/auth/otp", h.authHandler.RequestOTP)
	e.POST("/auth/verify", h.authHandler.VerifyOTP)
	e.POST("/auth/register", h.authHandler.Register)
	e.POST("/auth/login", h.authHandler.Login)

	// Authenticated user routes
	userRoutes := e.Group("/users", middleware.RequireAuth(h.cfg.JWT))
	userRoutes.GET("/me", h.userHandler.GetMe)
	userRoutes.PUT("/me", h.userHandler.UpdateMe)

	// Admin routes
	adminRoutes := e.Group("/admin",
		middleware.RequireAuth(h.cfg.JWT),
		middleware.RequireRole(h.cfg.JWT, models.RoleAdmin))
	adminRoutes.GET("/users", h.userHandler.ListUsers)
}
