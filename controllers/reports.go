package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fixmyrp-backend/models"
	"fixmyrp-backend/repository"
	"fixmyrp-backend/services"
	"fixmyrp-backend/utils"
)

// maxPhotoChars caps the inline photo payload (data URI or URL).
const maxPhotoChars = 1000000

type ReportController struct {
	reports       repository.ReportRepository
	notifications repository.NotificationRepository
	notifier      *services.Notifier
}

func NewReportController(reports repository.ReportRepository, notifications repository.NotificationRepository, notifier *services.Notifier) *ReportController {
	return &ReportController{reports: reports, notifications: notifications, notifier: notifier}
}

// Submit stores a new report with an initial "Pending" status and fans out
// the two submission notifications.
func (rc *ReportController) Submit(c *gin.Context) {
	var input struct {
		Category    string `json:"category"`
		Location    string `json:"location"`
		Description string `json:"description"`
		Date        string `json:"date"`
		Time        string `json:"time"`
		PhotoURL    string `json:"photoUrl"`
		Name        string `json:"name"`
		UserEmail   string `json:"userEmail"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if input.PhotoURL == "" || len(input.PhotoURL) > maxPhotoChars {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo is too large or missing."})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	report := models.Report{
		Category:    input.Category,
		Location:    input.Location,
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
		PhotoURL:    input.PhotoURL,
		Name:        input.Name,
		UserEmail:   input.UserEmail,
		StatusHistory: []models.StatusEntry{
			{Status: models.StatusPending, UpdatedAt: now},
		},
		CreatedAt: now,
	}
	if err := rc.reports.Insert(ctx, &report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit report"})
		return
	}

	// best-effort fan-out, the report write is not rolled back
	if err := rc.notifier.ReportSubmitted(ctx, &report); err != nil {
		utils.ErrorLogger.Error("submit fan-out failed: ", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report and notifications submitted successfully"})
}

// Edit replaces arbitrary fields on a report and returns the updated document.
func (rc *ReportController) Edit(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updated, err := rc.reports.UpdateFields(ctx, objID, fields)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report updated successfully", "updatedReport": updated})
}

// List returns all reports, newest first.
func (rc *ReportController) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reports, err := rc.reports.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// Get returns a single report by id.
func (rc *ReportController) Get(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	report, err := rc.reports.FindByID(ctx, objID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// UpdateStatus appends a status entry. Repeating the current status is a
// conflict, and "Resolved" is terminal.
func (rc *ReportController) UpdateStatus(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var input struct {
		Status    string     `json:"status" binding:"required"`
		UpdatedAt *time.Time `json:"updatedAt"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	report, err := rc.reports.FindByID(ctx, objID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	lastStatus := report.CurrentStatus()
	if lastStatus == input.Status {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status already updated to this status."})
		return
	}
	if lastStatus == models.StatusResolved {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Report has already been resolved."})
		return
	}

	updatedAt := time.Now()
	if input.UpdatedAt != nil {
		updatedAt = *input.UpdatedAt
	}
	entry := models.StatusEntry{Status: input.Status, UpdatedAt: updatedAt}
	if err := rc.reports.AppendStatus(ctx, objID, entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	if err := rc.notifier.StatusChanged(ctx, report, input.Status); err != nil {
		utils.ErrorLogger.Error("status fan-out failed: ", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully."})
}

// Message appends an admin message to a report and fans out the two message
// notifications.
func (rc *ReportController) Message(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	report, err := rc.reports.FindByID(ctx, objID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	msg := models.Message{
		Text:   input.Message,
		Sender: models.RecipientAdmin,
		Time:   services.FormatDisplayTime(time.Now()),
	}
	if err := rc.reports.AppendMessage(ctx, objID, msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := rc.notifier.AdminMessage(ctx, report, input.Message); err != nil {
		utils.ErrorLogger.Error("message fan-out failed: ", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message stored and notifications sent"})
}

// Delete removes a report and every notification referencing it.
func (rc *ReportController) Delete(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rc.reports.Delete(ctx, objID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report"})
		return
	}

	if _, err := rc.notifications.DeleteByReport(ctx, objID); err != nil {
		utils.ErrorLogger.Error("notification cleanup failed: ", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report and notifications deleted"})
}
