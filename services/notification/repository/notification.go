package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/krishilink/krishilink/internal/pkg/models"
)

// NotificationRepo implements the notification store over PostgreSQL
type NotificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepo creates a new notification repository instance
func NewNotificationRepo(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Create inserts a notification record
func (r *NotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	n.ID = uuid.New()
	n.CreatedAt = time.Now()

	query := `
		INSERT INTO notifications (id, contact_number, type, title, message, is_read, created_at)
		VALUES (:id, :contact_number, :type, :title, :message, :is_read, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, n); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// ListByContact returns notifications for a contact number, newest first
func (r *NotificationRepo) ListByContact(ctx context.Context, contactNumber string) ([]*models.Notification, error) {
	query := `
		SELECT id, contact_number, type, title, message, is_read, created_at
		FROM notifications
		WHERE contact_number = $1
		ORDER BY created_at DESC
	`

	var notifications []*models.Notification
	if err := r.db.SelectContext(ctx, &notifications, query, contactNumber); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead marks a notification as read
func (r *NotificationRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("notification not found")
	}
	return nil
}
