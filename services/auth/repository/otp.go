package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/krishilink/krishilink/internal/pkg/constants"
)

// ConsumeOTPToken claims the fingerprint of a verified OTP token until its
// natural expiry. The claim is a SETNX, so exactly one verification of a
// given token can ever succeed; a replayed token finds the key taken.
func (r *UserRepo) ConsumeOTPToken(ctx context.Context, fingerprint string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return false, nil
	}

	key := fmt.Sprintf(constants.KeyOTPConsumed, fingerprint)
	claimed, err := r.redis.SetNX(ctx, key, 1, ttl)
	if err != nil {
		return false, fmt.Errorf("failed to claim OTP token: %w", err)
	}
	return claimed, nil
}
