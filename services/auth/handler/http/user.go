package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/krishilink/krishilink/internal/pkg/logger"
	"github.com/krishilink/krishilink/internal/pkg/middleware"
	"github.com/krishilink/krishilink/internal/utils"
	"github.com/krishilink/krishilink/services/auth"
)

// UserHandler handles HTTP requests for user profile operations
type UserHandler struct {
	authUC auth.AuthUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(authUC auth.AuthUC) *UserHandler {
	return &UserHandler{authUC: authUC}
}

// GetMe returns the caller's own record
func (h *UserHandler) GetMe(c echo.Context) error {
	identity := middleware.AuthenticatedUser(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.authUC.GetUserByID(c.Request().Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// UpdateMe updates the caller's own record
func (h *UserHandler) UpdateMe(c echo.Context) error {
	identity := middleware.AuthenticatedUser(c)
	if identity == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var request struct {
		FullName string `json:"fullname"`
		Email    string `json:"email"`
	}
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), identity.UserID, request.FullName, request.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.Error("Profile update failed", logger.Fields{
			"user_id": identity.UserID.String(),
			"error":   err.Error(),
		})
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", user)
}

// ListUsers returns all users; admin only, enforced by route middleware
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.authUC.ListUsers(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list users")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", users)
}
