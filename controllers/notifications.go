package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fixmyrp-backend/models"
	"fixmyrp-backend/repository"
)

type NotificationController struct {
	notifications repository.NotificationRepository
}

func NewNotificationController(notifications repository.NotificationRepository) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// List returns notifications filtered by the email and recipient query
// parameters, newest first.
func (nc *NotificationController) List(c *gin.Context) {
	email := c.Query("email")
	recipient := c.Query("recipient")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	notifications, err := nc.notifications.Find(ctx, email, recipient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// Create inserts a raw notification record.
func (nc *NotificationController) Create(c *gin.Context) {
	var notification models.Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	notification.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := nc.notifications.Insert(ctx, &notification); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save notification"})
		return
	}

	c.JSON(http.StatusOK, notification)
}

// Clear removes every notification.
func (nc *NotificationController) Clear(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := nc.notifications.Clear(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications cleared"})
}
