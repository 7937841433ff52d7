// Package otp implements stateless one-time passcode issuance and
// verification. The server keeps no record of issued passcodes: the signed
// OTP token handed to the client carries everything verification needs.
package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/krishilink/krishilink/internal/pkg/models"
	"github.com/krishilink/krishilink/internal/pkg/token"
)

// Claims is the self-describing OTP token payload. Expiry lives in the
// payload itself (expires_at) rather than in a registered exp claim, so the
// engine owns the expiry check and can report the remaining window.
type Claims struct {
	ContactNumber string `json:"contact_number"`
	Code          string `json:"code"`
	IssuedAt      int64  `json:"issued_at"`
	ExpiresAt     int64  `json:"expires_at"`
	jwt.RegisteredClaims
}

// Verification is the outcome of a successful OTP check
type Verification struct {
	ContactNumber string
	ExpiresAt     time.Time
}

// Engine issues and verifies OTP tokens under a dedicated signing secret
type Engine struct {
	secret string
	window time.Duration
	now    func() time.Time
}

// NewEngine creates an OTP engine from configuration
func NewEngine(cfg models.OTPConfig) *Engine {
	window := time.Duration(cfg.ExpiryMinutes) * time.Minute
	if window <= 0 {
		window = 10 * time.Minute
	}
	return &Engine{
		secret: cfg.Secret,
		window: window,
		now:    time.Now,
	}
}

// Generate draws a uniformly random six-digit passcode in [100000, 999999]
// from a cryptographically secure source.
func (e *Engine) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate passcode: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// Issue generates a passcode and wraps it, together with the contact number
// and the validity window, into a signed token. The passcode goes to the
// user out-of-band; the token goes back to the client so that verification
// needs no server-side lookup.
func (e *Engine) Issue(contactNumber string) (code string, signed string, err error) {
	code, err = e.Generate()
	if err != nil {
		return "", "", err
	}

	now := e.now()
	claims := Claims{
		ContactNumber: contactNumber,
		Code:          code,
		IssuedAt:      now.Unix(),
		ExpiresAt:     now.Add(e.window).Unix(),
	}

	signed, err = token.Encode(claims, e.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign OTP token: %w", err)
	}
	return code, signed, nil
}

// Verify checks a supplied passcode against a previously issued token.
// It returns the embedded contact number only when the signature holds, the
// token is within its window and the passcode matches exactly. Every
// failure collapses to (nil, false); callers never learn which check broke.
func (e *Engine) Verify(tokenString, suppliedCode string) (*Verification, bool) {
	var claims Claims
	if err := token.Decode(tokenString, e.secret, &claims); err != nil {
		return nil, false
	}

	expiresAt := time.Unix(claims.ExpiresAt, 0)
	if e.now().After(expiresAt) {
		return nil, false
	}
	if suppliedCode == "" || claims.Code != suppliedCode {
		return nil, false
	}

	return &Verification{
		ContactNumber: claims.ContactNumber,
		ExpiresAt:     expiresAt,
	}, true
}

// Fingerprint returns a stable digest of an OTP token, used as the key of
// the consumed-token cache. The raw token never goes into the cache.
func Fingerprint(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))
	return hex.EncodeToString(sum[:])
}
