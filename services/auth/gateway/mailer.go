package gateway

import (
	"context"
	"fmt"
)

// SendOTPEmail delivers the passcode over SMTP. Transient delivery failures
// are retried with backoff; passcodes are short-lived so a failure after the
// retry budget is surfaced rather than queued.
func (g *AuthGW) SendOTPEmail(ctx context.Context, email, code string) error {
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.mailer.SendOTP(ctx, email, code)
	})
	if err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}
	return nil
}
