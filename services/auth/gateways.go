package auth

import (
	"context"

	"github.com/krishilink/krishilink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/krishilink/krishilink/services/auth AuthGW

// AuthGW represents the external collaborators of the auth service: the
// out-of-band delivery channel and the event bus.
type AuthGW interface {
	// SendOTPEmail delivers the passcode out-of-band. A failure means the
	// user never received a code; the caller must not return the OTP token.
	SendOTPEmail(ctx context.Context, email, code string) error

	PublishOTPRequested(event *models.OTPRequestedEvent) error
	PublishUserRegistered(event *models.UserRegisteredEvent) error
}
