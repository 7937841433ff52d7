package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/krishilink/krishilink/internal/pkg/models"
)

// Boundary errors the handlers branch on. Verification failures are
// deliberately coarse: the client never learns whether a signature, expiry
// or passcode check failed.
var (
	ErrInvalidContact     = errors.New("invalid contact number")
	ErrInvalidRole        = errors.New("invalid role or profile")
	ErrDeliveryFailed     = errors.New("failed to send OTP")
	ErrInvalidCredentials = errors.New("invalid or expired credentials")
	ErrAlreadyRegistered  = errors.New("user already registered")
	ErrUserNotFound       = errors.New("user not found")
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/krishilink/krishilink/services/auth AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	// OTP flow
	RequestOTP(ctx context.Context, contactNumber, email string) (*models.OTPResponse, error)
	VerifyOTP(ctx context.Context, otpToken, code string) (*models.AuthResponse, error)

	// registration and password login
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	LoginWithPassword(ctx context.Context, contactNumber, password string) (*models.AuthResponse, error)

	// profile
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, fullName, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}
