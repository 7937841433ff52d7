package usecase

import (
	"github.com/krishilink/krishilink/internal/pkg/models"
	"github.com/krishilink/krishilink/internal/pkg/otp"
	"github.com/krishilink/krishilink/services/auth"
)

// AuthUC implements the authentication usecase
type AuthUC struct {
	userRepo  auth.UserRepo
	authGW    auth.AuthGW
	otpEngine *otp.Engine
	cfg       *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	userRepo auth.UserRepo,
	authGW auth.AuthGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		userRepo:  userRepo,
		authGW:    authGW,
		otpEngine: otp.NewEngine(cfg.OTP),
		cfg:       cfg,
	}
}
