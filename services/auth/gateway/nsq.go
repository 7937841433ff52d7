package gateway

import (
	"github.com/krishilink/krishilink/internal/pkg/constants"
	"github.com/krishilink/krishilink/internal/pkg/models"
)

// PublishOTPRequested publishes an OTP issuance event
func (g *AuthGW) PublishOTPRequested(event *models.OTPRequestedEvent) error {
	return g.producer.Publish(constants.TopicOTPRequested, event)
}

// PublishUserRegistered publishes a registration event
func (g *AuthGW) PublishUserRegistered(event *models.UserRegisteredEvent) error {
	return g.producer.Publish(constants.TopicUserRegistered, event)
}
