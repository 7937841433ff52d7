package handler

import (
	"context"
	"fmt"

	"github.com/krishilink/krishilink/internal/pkg/constants"
	"github.com/krishilink/krishilink/internal/pkg/logger"
	"github.com/krishilink/krishilink/internal/pkg/models"
	nsqpkg "github.com/krishilink/krishilink/internal/pkg/nsq"
	"github.com/krishilink/krishilink/services/notification"
)

// Consumer translates auth events into notification records
type Consumer struct {
	repo      notification.NotificationRepo
	consumers []*nsqpkg.Consumer
}

// NewConsumer creates the event consumer
func NewConsumer(repo notification.NotificationRepo) *Consumer {
	return &Consumer{repo: repo}
}

// Start subscribes to the auth topics on the given NSQ daemon
func (c *Consumer) Start(address string) error {
	otpConsumer, err := nsqpkg.NewConsumer(
		constants.TopicOTPRequested, constants.ChannelNotification, address, c.handleOTPRequested)
	if err != nil {
		return fmt.Errorf("failed to start OTP consumer: %w", err)
	}
	c.consumers = append(c.consumers, otpConsumer)

	registeredConsumer, err := nsqpkg.NewConsumer(
		constants.TopicUserRegistered, constants.ChannelNotification, address, c.handleUserRegistered)
	if err != nil {
		return fmt.Errorf("failed to start registration consumer: %w", err)
	}
	c.consumers = append(c.consumers, registeredConsumer)

	return nil
}

// Stop stops all consumers
func (c *Consumer) Stop() {
	for _, consumer := range c.consumers {
		consumer.Stop()
	}
}

func (c *Consumer) handleOTPRequested(message []byte) error {
	var event models.OTPRequestedEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		return err
	}

	n := &models.Notification{
		ContactNumber: event.ContactNumber,
		Type:          models.NotificationTypeOTP,
		Title:         "Verification code sent",
		Message:       fmt.Sprintf("A verification code was sent to %s.", event.Email),
	}
	if err := c.repo.Create(context.Background(), n); err != nil {
		return err
	}

	logger.Info("Recorded OTP notification", logger.Fields{
		"contact_number": event.ContactNumber,
	})
	return nil
}

func (c *Consumer) handleUserRegistered(message []byte) error {
	var event models.UserRegisteredEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		return err
	}

	n := &models.Notification{
		ContactNumber: event.ContactNumber,
		Type:          models.NotificationTypeSystem,
		Title:         "Welcome to KrishiLink",
		Message:       fmt.Sprintf("Your %s account is ready.", event.Role),
	}
	if err := c.repo.Create(context.Background(), n); err != nil {
		return err
	}

	logger.Info("Recorded registration notification", logger.Fields{
		"user_id": event.UserID.String(),
		"role":    event.Role,
	})
	return nil
}
