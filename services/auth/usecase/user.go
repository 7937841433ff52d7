package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/krishilink/krishilink/internal/pkg/models"
	"github.com/krishilink/krishilink/services/auth"
)

// GetUserByID retrieves a user together with its role profile
func (u *AuthUC) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateProfile updates the mutable parts of a user's own record
func (u *AuthUC) UpdateProfile(ctx context.Context, userID uuid.UUID, fullName, email string) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if fullName != "" {
		user.FullName = fullName
	}
	if email != "" {
		user.Email = email
	}

	if err := u.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// ListUsers returns all users; reserved for admin callers
func (u *AuthUC) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := u.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
