package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/krishilink/krishilink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/krishilink/krishilink/services/auth UserRepo

// UserRepo represents the identity store interface. Lookups return
// ErrUserNotFound when no record matches; any other error is a storage
// failure.
type UserRepo interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByContact(ctx context.Context, contactNumber string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context) ([]*models.User, error)

	// ConsumeOTPToken claims the fingerprint of a verified OTP token for
	// the remainder of its validity window. Returns false when the token
	// was already redeemed.
	ConsumeOTPToken(ctx context.Context, fingerprint string, ttl time.Duration) (bool, error)
}
