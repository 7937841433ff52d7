package gateway

import (
	"github.com/krishilink/krishilink/internal/pkg/mailer"
	"github.com/krishilink/krishilink/internal/pkg/nsq"
	"github.com/krishilink/krishilink/internal/pkg/retry"
)

// AuthGW bundles the auth service's external collaborators: SMTP delivery
// and the NSQ event bus
type AuthGW struct {
	mailer   *mailer.Mailer
	producer *nsq.Producer
	retrier  *retry.Retrier
}

// NewAuthGW creates a new auth gateway instance
func NewAuthGW(m *mailer.Mailer, producer *nsq.Producer) *AuthGW {
	return &AuthGW{
		mailer:   m,
		producer: producer,
		retrier:  retry.New(retry.DefaultConfig()),
	}
}
