// Package token implements the signed-claims codec shared by session tokens
// and OTP tokens. Both are HS256 JWTs; the two families are signed under
// separate secrets.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Decode failure classes. Callers inside the auth core branch on these;
// public verification surfaces must collapse them into a single uniform
// failure so the client cannot tell signature, expiry and parse errors apart.
var (
	ErrInvalidSignature = errors.New("token: invalid signature")
	ErrExpired          = errors.New("token: expired")
	ErrMalformed        = errors.New("token: malformed")
)

// Encode serializes claims and signs them with HS256 under secret.
// Expiry is governed by whatever exp claim the caller set; claims without
// one (the OTP token carries its own expires_at field) never expire at the
// codec level.
func Encode(claims jwt.Claims, secret string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the signature of tokenString and parses its payload into
// claims. The signature is checked before anything else; a registered exp
// claim, when present, is enforced afterwards.
func Decode(tokenString, secret string, claims jwt.Claims) error {
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return classify(err)
	}
	if !parsed.Valid {
		return ErrInvalidSignature
	}
	return nil
}

// classify maps jwt library validation errors onto the codec's error classes
func classify(err error) error {
	var ve *jwt.ValidationError
	if !errors.As(err, &ve) {
		return ErrMalformed
	}
	switch {
	case ve.Errors&jwt.ValidationErrorMalformed != 0:
		return ErrMalformed
	case ve.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0:
		return ErrInvalidSignature
	case ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0:
		return ErrExpired
	default:
		return ErrInvalidSignature
	}
}

// WithExpiry returns registered claims carrying issuance metadata and an
// expiry ttl from now. Used by callers that let the codec enforce expiry.
func WithExpiry(issuer string, ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}
