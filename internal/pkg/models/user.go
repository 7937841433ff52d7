package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Roles a user can carry. The role travels inside the session token and is
// the only capability tag used for authorization decisions.
const (
	RoleFarmer   = "farmer"
	RoleRetailer = "retailer"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role is one of the known capability tags.
func ValidRole(role string) bool {
	switch role {
	case RoleFarmer, RoleRetailer, RoleAdmin:
		return true
	}
	return false
}

// User represents a platform user (farmer, retailer or admin)
type User struct {
	ID            uuid.UUID        `json:"id" db:"id"`
	ContactNumber string           `json:"contact_number" db:"contact_number"`
	Email         string           `json:"email,omitempty" db:"email"`
	FullName      string           `json:"fullname" db:"fullname"`
	Role          string           `json:"role" db:"role"`
	PasswordHash  string           `json:"-" db:"password_hash"`
	IsVerified    bool             `json:"is_verified" db:"is_verified"`
	IsActive      bool             `json:"is_active" db:"is_active"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at" db:"updated_at"`
	FarmerInfo    *FarmerProfile   `json:"farmer_info,omitempty" db:"-"`
	RetailerInfo  *RetailerProfile `json:"retailer_info,omitempty" db:"-"`
}

// FarmerProfile holds the farmer-specific part of a registration
type FarmerProfile struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	LandLocation string    `json:"land_location" db:"land_location"`
	SoilType     string    `json:"soil_type" db:"soil_type"`
	LandSizeAcre float64   `json:"land_size_acre,omitempty" db:"land_size_acre"`
	Latitude     float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude    float64   `json:"longitude,omitempty" db:"longitude"`
	Geocell      string    `json:"geocell,omitempty" db:"geocell"`
}

// RetailerProfile holds the retailer-specific part of a registration
type RetailerProfile struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	ShopName     string    `json:"shop_name" db:"shop_name"`
	CompanyName  string    `json:"company_name,omitempty" db:"company_name"`
	Location     string    `json:"location" db:"location"`
	BusinessType string    `json:"business_type,omitempty" db:"business_type"`
}

// Validate checks that the role-specific profile matches the declared role.
// Each role has a fixed schema rather than an open bag of fields.
func (u *User) Validate() error {
	if !ValidRole(u.Role) {
		return fmt.Errorf("unknown role %q", u.Role)
	}
	switch u.Role {
	case RoleFarmer:
		if u.FarmerInfo == nil {
			return fmt.Errorf("farmer registration requires a farmer profile")
		}
		if u.FarmerInfo.LandLocation == "" {
			return fmt.Errorf("farmer profile requires a land location")
		}
	case RoleRetailer:
		if u.RetailerInfo == nil {
			return fmt.Errorf("retailer registration requires a retailer profile")
		}
		if u.RetailerInfo.ShopName == "" || u.RetailerInfo.Location == "" {
			return fmt.Errorf("retailer profile requires a shop name and location")
		}
	}
	return nil
}
