package models

import (
	"github.com/google/uuid"
)

// OTPRequest represents a request to send an OTP to a contact number.
// Email is the delivery address; when empty a placeholder address derived
// from the contact number is used instead.
type OTPRequest struct {
	ContactNumber string `json:"contact_number" validate:"required"`
	Email         string `json:"email"`
}

// OTPResponse is returned after a passcode has been delivered. The signed
// token is the server's only memory of the issuance; the client must present
// it back together with the passcode.
type OTPResponse struct {
	OTPToken string `json:"otp_token"`
	Message  string `json:"message"`
}

// VerifyRequest represents a request to verify an issued OTP
type VerifyRequest struct {
	OTPToken string `json:"otp_token" validate:"required"`
	OTP      string `json:"otp" validate:"required"`
}

// RegisterRequest represents a verified signup with a role-specific profile
type RegisterRequest struct {
	OTPToken string           `json:"otp_token" validate:"required"`
	OTP      string           `json:"otp" validate:"required"`
	FullName string           `json:"fullname" validate:"required"`
	Email    string           `json:"email"`
	Role     string           `json:"role" validate:"required"`
	Password string           `json:"password"`
	Farmer   *FarmerProfile   `json:"farmer_info,omitempty"`
	Retailer *RetailerProfile `json:"retailer_info,omitempty"`
}

// LoginRequest represents a password login
type LoginRequest struct {
	ContactNumber string `json:"contact_number" validate:"required"`
	Password      string `json:"password" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
	NewUser   bool   `json:"new_user,omitempty"`
}

// AuthenticatedUser is the signature-verified identity recovered from a
// session token, attached to a request for the duration of its handling.
type AuthenticatedUser struct {
	UserID        uuid.UUID `json:"user_id"`
	ContactNumber string    `json:"contact_number"`
	Role          string    `json:"role"`
}
