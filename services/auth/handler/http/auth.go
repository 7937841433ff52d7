package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/krishilink/krishilink/internal/pkg/logger"
	"github.com/krishilink/krishilink/internal/pkg/models"
	"github.com/krishilink/krishilink/internal/utils"
	"github.com/krishilink/krishilink/services/auth"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// RequestOTP handles OTP issuance requests
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var request models.OTPRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.ContactNumber == "" {
		return utils.BadRequestResponse(c, "Contact number is required")
	}

	response, err := h.authUC.RequestOTP(c.Request().Context(), request.ContactNumber, request.Email)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidContact):
			return utils.BadRequestResponse(c, "Invalid contact number")
		case errors.Is(err, auth.ErrDeliveryFailed):
			return utils.BadGatewayResponse(c, "Failed to send OTP. Please try again.")
		default:
			logger.Error("OTP issuance failed", logger.Fields{"error": err.Error()})
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", response)
}

// VerifyOTP handles OTP verification and login requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var request models.VerifyRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.OTPToken == "" || request.OTP == "" {
		return utils.BadRequestResponse(c, "OTP token and passcode are required")
	}

	response, err := h.authUC.VerifyOTP(c.Request().Context(), request.OTPToken, request.OTP)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid or expired OTP")
		}
		logger.Error("OTP verification failed", logger.Fields{"error": err.Error()})
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", response)
}

// Register handles verified signup requests
func (h *AuthHandler) Register(c echo.Context) error {
	var request models.RegisterRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.OTPToken == "" || request.OTP == "" {
		return utils.BadRequestResponse(c, "OTP token and passcode are required")
	}
	if request.FullName == "" || request.Role == "" {
		return utils.BadRequestResponse(c, "Name and role are required")
	}

	response, err := h.authUC.Register(c.Request().Context(), &request)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return utils.UnauthorizedResponse(c, "Invalid or expired OTP")
		case errors.Is(err, auth.ErrInvalidRole):
			return utils.BadRequestResponse(c, "Invalid role or profile")
		case errors.Is(err, auth.ErrAlreadyRegistered):
			return utils.ErrorResponseHandler(c, http.StatusConflict, "User already registered")
		default:
			logger.Error("Registration failed", logger.Fields{"error": err.Error()})
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Registration successful", response)
}

// Login handles password login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var request models.LoginRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.ContactNumber == "" || request.Password == "" {
		return utils.BadRequestResponse(c, "Contact number and password are required")
	}

	response, err := h.authUC.LoginWithPassword(c.Request().Context(), request.ContactNumber, request.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		logger.Error("Password login failed", logger.Fields{"error": err.Error()})
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", response)
}
