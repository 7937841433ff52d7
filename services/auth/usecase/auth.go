package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/krishilink/krishilink/internal/pkg/logger"
	"github.com/krishilink/krishilink/internal/pkg/models"
	"github.com/krishilink/krishilink/internal/pkg/otp"
	"github.com/krishilink/krishilink/internal/pkg/password"
	"github.com/krishilink/krishilink/internal/pkg/token"
	"github.com/krishilink/krishilink/internal/utils"
	"github.com/krishilink/krishilink/services/auth"
)

// RequestOTP issues a passcode for the given contact number and mails it.
// The signed OTP token is only handed back once delivery succeeded, so the
// client never holds a token it cannot satisfy.
func (u *AuthUC) RequestOTP(ctx context.Context, contactNumber, email string) (*models.OTPResponse, error) {
	isValid, formatted, err := utils.ValidateContactNumber(contactNumber)
	if err != nil || !isValid {
		return nil, auth.ErrInvalidContact
	}

	if email == "" {
		email = utils.FallbackEmail(formatted)
	}

	code, otpToken, err := u.otpEngine.Issue(formatted)
	if err != nil {
		return nil, fmt.Errorf("failed to issue OTP: %w", err)
	}

	if err := u.authGW.SendOTPEmail(ctx, email, code); err != nil {
		logger.Error("OTP delivery failed", logger.Fields{
			"contact_number": formatted,
			"error":          err.Error(),
		})
		return nil, auth.ErrDeliveryFailed
	}

	// Event publishing is best-effort and must not hold up the response
	go func() {
		event := &models.OTPRequestedEvent{
			ContactNumber: formatted,
			Email:         email,
			RequestedAt:   time.Now(),
		}
		if err := u.authGW.PublishOTPRequested(event); err != nil {
			logger.Warn("Failed to publish OTP requested event", logger.Fields{
				"contact_number": formatted,
				"error":          err.Error(),
			})
		}
	}()

	logger.Info("OTP issued", logger.Fields{"contact_number": formatted})

	return &models.OTPResponse{
		OTPToken: otpToken,
		Message:  fmt.Sprintf("OTP sent to %s", email),
	}, nil
}

// VerifyOTP checks a passcode against its token, enforces single use and
// logs the caller in, creating a default farmer account on first contact.
func (u *AuthUC) VerifyOTP(ctx context.Context, otpToken, code string) (*models.AuthResponse, error) {
	verification, err := u.consumeOTP(ctx, otpToken, code)
	if err != nil {
		return nil, err
	}

	newUser := false
	user, err := u.userRepo.GetUserByContact(ctx, verification.ContactNumber)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrUserNotFound):
		// First contact with the platform: provision a bare account, the
		// client completes the profile through registration later.
		user = &models.User{
			ContactNumber: verification.ContactNumber,
			Role:          models.RoleFarmer,
			IsVerified:    true,
			IsActive:      true,
		}
		if err := u.userRepo.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		newUser = true
	default:
		// A storage failure is not "no such user"; surface it rather than
		// provision a duplicate account.
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	resp, err := u.sessionFor(user)
	if err != nil {
		return nil, err
	}
	resp.NewUser = newUser
	return resp, nil
}

// Register completes a verified signup with a role-specific profile
func (u *AuthUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	verification, err := u.consumeOTP(ctx, req.OTPToken, req.OTP)
	if err != nil {
		return nil, err
	}

	existing, err := u.userRepo.GetUserByContact(ctx, verification.ContactNumber)
	if err == nil && existing != nil {
		return nil, auth.ErrAlreadyRegistered
	}
	if err != nil && !errors.Is(err, auth.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user := &models.User{
		ContactNumber: verification.ContactNumber,
		Email:         req.Email,
		FullName:      req.FullName,
		Role:          req.Role,
		IsVerified:    true,
		IsActive:      true,
		FarmerInfo:    req.Farmer,
		RetailerInfo:  req.Retailer,
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidRole, err)
	}

	if req.Password != "" {
		hash, err := password.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	go func() {
		event := &models.UserRegisteredEvent{
			UserID:        user.ID,
			ContactNumber: user.ContactNumber,
			Role:          user.Role,
			RegisteredAt:  time.Now(),
		}
		if err := u.authGW.PublishUserRegistered(event); err != nil {
			logger.Warn("Failed to publish user registered event", logger.Fields{
				"user_id": user.ID.String(),
				"error":   err.Error(),
			})
		}
	}()

	logger.Info("User registered", logger.Fields{
		"user_id": user.ID.String(),
		"role":    user.Role,
	})

	return u.sessionFor(user)
}

// LoginWithPassword authenticates a returning user by contact number and
// password. All failure modes collapse into one uniform outcome.
func (u *AuthUC) LoginWithPassword(ctx context.Context, contactNumber, pass string) (*models.AuthResponse, error) {
	isValid, formatted, err := utils.ValidateContactNumber(contactNumber)
	if err != nil || !isValid {
		return nil, auth.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetUserByContact(ctx, formatted)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.PasswordHash == "" {
		return nil, auth.ErrInvalidCredentials
	}

	if !password.Verify(pass, user.PasswordHash) {
		return nil, auth.ErrInvalidCredentials
	}

	return u.sessionFor(user)
}

// consumeOTP verifies the token/passcode pair and claims the token for the
// rest of its window so a captured pair cannot be replayed.
func (u *AuthUC) consumeOTP(ctx context.Context, otpToken, code string) (*otp.Verification, error) {
	verification, ok := u.otpEngine.Verify(otpToken, code)
	if !ok {
		return nil, auth.ErrInvalidCredentials
	}

	ttl := time.Until(verification.ExpiresAt)
	claimed, err := u.userRepo.ConsumeOTPToken(ctx, otp.Fingerprint(otpToken), ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to record OTP consumption: %w", err)
	}
	if !claimed {
		return nil, auth.ErrInvalidCredentials
	}

	return verification, nil
}

// sessionFor mints a session token for the given user
func (u *AuthUC) sessionFor(user *models.User) (*models.AuthResponse, error) {
	signed, expiresAt, err := token.IssueSession(user.ID, user.ContactNumber, user.Role, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &models.AuthResponse{
		Token:     signed,
		UserID:    user.ID.String(),
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}
