// Package password provides one-way credential hashing and verification.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt work factor. Cost 12 keeps hashing slow enough to blunt offline
// guessing while staying tolerable on a login path.
const cost = 12

// Hash returns a one-way bcrypt hash of the given secret. Each call salts
// independently, so hashing the same secret twice yields different output.
func Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether secret matches the stored hash. The comparison is
// constant-time within bcrypt; the secret is never reconstructed or logged.
func Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
