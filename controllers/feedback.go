package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fixmyrp-backend/models"
	"fixmyrp-backend/repository"
)

type FeedbackController struct {
	feedback repository.FeedbackRepository
}

func NewFeedbackController(feedback repository.FeedbackRepository) *FeedbackController {
	return &FeedbackController{feedback: feedback}
}

// Submit stores a feedback entry.
func (fc *FeedbackController) Submit(c *gin.Context) {
	var input struct {
		FeedbackText  string `json:"feedbackText" binding:"required"`
		Rating        int    `json:"rating" binding:"required"`
		Name          string `json:"name"`
		Email         string `json:"email"`
		ContactNumber string `json:"contactNumber"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	feedback := models.Feedback{
		FeedbackText:  input.FeedbackText,
		Rating:        input.Rating,
		Name:          input.Name,
		Email:         input.Email,
		ContactNumber: input.ContactNumber,
		CreatedAt:     time.Now(),
	}
	if err := fc.feedback.Insert(ctx, &feedback); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Feedback submitted successfully"})
}

// List returns all feedback entries, newest first.
func (fc *FeedbackController) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	feedbacks, err := fc.feedback.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedbacks"})
		return
	}

	c.JSON(http.StatusOK, feedbacks)
}
