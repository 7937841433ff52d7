package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types recorded by the notification service
const (
	NotificationTypeOTP    = "otp"
	NotificationTypeSystem = "system"
)

// Notification represents a user-facing notification record
type Notification struct {
	ID            uuid.UUID `json:"id" db:"id"`
	ContactNumber string    `json:"contact_number" db:"contact_number"`
	Type          string    `json:"type" db:"type"`
	Title         string    `json:"title" db:"title"`
	Message       string    `json:"message" db:"message"`
	IsRead        bool      `json:"is_read" db:"is_read"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// OTPRequestedEvent is published when a passcode has been issued and mailed
type OTPRequestedEvent struct {
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
	RequestedAt   time.Time `json:"requested_at"`
}

// UserRegisteredEvent is published when a new user completes registration
type UserRegisteredEvent struct {
	UserID        uuid.UUID `json:"user_id"`
	ContactNumber string    `json:"contact_number"`
	Role          string    `json:"role"`
	RegisteredAt  time.Time `json:"registered_at"`
}
