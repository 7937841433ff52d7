package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"

	"github.com/krishilink/krishilink/internal/pkg/models"
	"github.com/krishilink/krishilink/services/auth"
)

// GetUserByContact retrieves a user by contact number
func (r *UserRepo) GetUserByContact(ctx context.Context, contactNumber string) (*models.User, error) {
	return r.getUserBy(ctx, "contact_number", contactNumber)
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserBy(ctx, "id", id.String())
}

func (r *UserRepo) getUserBy(ctx context.Context, field, value string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, contact_number, email, fullname, role, password_hash,
			is_verified, is_active, created_at, updated_at
		FROM users
		WHERE %s = $1
	`, field)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := r.attachProfile(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new user and its role profile in one transaction
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (id, contact_number, email, fullname, role,
			password_hash, is_verified, is_active, created_at, updated_at
		) VALUES (:id, :contact_number, :email, :fullname, :role,
			:password_hash, :is_verified, :is_active, :created_at, :updated_at)
	`
	if _, err = tx.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	switch user.Role {
	case models.RoleFarmer:
		if user.FarmerInfo != nil {
			user.FarmerInfo.UserID = user.ID
			if user.FarmerInfo.Latitude != 0 || user.FarmerInfo.Longitude != 0 {
				user.FarmerInfo.Geocell = geohash.Encode(user.FarmerInfo.Latitude, user.FarmerInfo.Longitude)
			}
			profileQuery := `
				INSERT INTO farmer_profiles (user_id, land_location, soil_type,
					land_size_acre, latitude, longitude, geocell
				) VALUES (:user_id, :land_location, :soil_type,
					:land_size_acre, :latitude, :longitude, :geocell)
			`
			if _, err = tx.NamedExecContext(ctx, profileQuery, user.FarmerInfo); err != nil {
				return fmt.Errorf("failed to insert farmer profile: %w", err)
			}
		}
	case models.RoleRetailer:
		if user.RetailerInfo != nil {
			user.RetailerInfo.UserID = user.ID
			profileQuery := `
				INSERT INTO retailer_profiles (user_id, shop_name, company_name,
					location, business_type
				) VALUES (:user_id, :shop_name, :company_name, :location, :business_type)
			`
			if _, err = tx.NamedExecContext(ctx, profileQuery, user.RetailerInfo); err != nil {
				return fmt.Errorf("failed to insert retailer profile: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateUser updates the mutable user columns
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	query := `
		UPDATE users
		SET email = :email, fullname = :fullname, password_hash = :password_hash,
			is_verified = :is_verified, is_active = :is_active, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

// ListUsers returns all users ordered by creation time
func (r *UserRepo) ListUsers(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, contact_number, email, fullname, role, password_hash,
			is_verified, is_active, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`

	var users []*models.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// attachProfile loads the role-specific profile for a user
func (r *UserRepo) attachProfile(ctx context.Context, user *models.User) error {
	switch user.Role {
	case models.RoleFarmer:
		query := `
			SELECT user_id, land_location, soil_type, land_size_acre,
				latitude, longitude, geocell
			FROM farmer_profiles
			WHERE user_id = $1
		`
		var profile models.FarmerProfile
		err := r.db.GetContext(ctx, &profile, query, user.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to get farmer profile: %w", err)
		}
		user.FarmerInfo = &profile
	case models.RoleRetailer:
		query := `
			SELECT user_id, shop_name, company_name, location, business_type
			FROM retailer_profiles
			WHERE user_id = $1
		`
		var profile models.RetailerProfile
		err := r.db.GetContext(ctx, &profile, query, user.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to get retailer profile: %w", err)
		}
		user.RetailerInfo = &profile
	}
	return nil
}
