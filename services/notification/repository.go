package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/krishilink/krishilink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/krishilink/krishilink/services/notification NotificationRepo

// NotificationRepo represents the notification store interface
type NotificationRepo interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByContact(ctx context.Context, contactNumber string) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}
