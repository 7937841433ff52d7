package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/krishilink/krishilink/services/notification"
)

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	repo notification.NotificationRepo
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(repo notification.NotificationRepo) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

// RegisterRoutes registers the notification API routes
func (h *NotificationHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	notifications := router.Group("/notifications")
	{
		notifications.GET("/:contact", h.List)
		notifications.POST("/:id/read", h.MarkRead)
	}
}

// List returns the notifications for a contact number, newest first
func (h *NotificationHandler) List(c *gin.Context) {
	contact := c.Param("contact")
	if contact == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Contact number is required"})
		return
	}

	notifications, err := h.repo.ListByContact(c.Request.Context(), contact)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to list notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": notifications})
}

// MarkRead marks a notification as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid notification id"})
		return
	}

	if err := h.repo.MarkRead(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
