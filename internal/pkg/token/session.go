package token

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/krishilink/krishilink/internal/pkg/models"
)

// SessionClaims is the fixed session payload: user identity plus role.
// Nothing else rides in the session token.
type SessionClaims struct {
	UserID        uuid.UUID `json:"user_id"`
	ContactNumber string    `json:"contact_number"`
	Role          string    `json:"role"`
	jwt.RegisteredClaims
}

// IssueSession mints a signed session token for the given user identity.
// The validity window comes from configuration (minutes, default seven
// days). Returns the token and its unix expiry instant.
func IssueSession(userID uuid.UUID, contactNumber, role string, cfg models.JWTConfig) (string, int64, error) {
	ttl := time.Duration(cfg.Expiration) * time.Minute
	claims := SessionClaims{
		UserID:           userID,
		ContactNumber:    contactNumber,
		Role:             role,
		RegisteredClaims: WithExpiry(cfg.Issuer, ttl),
	}

	signed, err := Encode(claims, cfg.Secret)
	if err != nil {
		return "", 0, err
	}
	return signed, claims.ExpiresAt.Unix(), nil
}

// VerifySession decodes and verifies a session token. Any failure, whether
// a bad signature, an expired token or garbage input, yields nil: callers
// treat nil uniformly as "not authenticated".
func VerifySession(tokenString, secret string) *models.AuthenticatedUser {
	var claims SessionClaims
	if err := Decode(tokenString, secret, &claims); err != nil {
		return nil
	}
	if claims.UserID == uuid.Nil || claims.Role == "" {
		return nil
	}
	return &models.AuthenticatedUser{
		UserID:        claims.UserID,
		ContactNumber: claims.ContactNumber,
		Role:          claims.Role,
	}
}
