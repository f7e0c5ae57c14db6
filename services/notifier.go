package services

import (
	"context"
	"fmt"
	"time"

	"fixmyrp-backend/models"
	"fixmyrp-backend/repository"
)

// AdminMailbox is the fixed address admin-facing notifications are filed under.
const AdminMailbox = "admin@rp.edu.sg"

// displayTime matches the human-readable strings stored on notifications
// and messages, e.g. "7/14/2025, 3:04:05 PM".
const displayTime = "1/2/2006, 3:04:05 PM"

func FormatDisplayTime(t time.Time) string {
	return t.Format(displayTime)
}

// Notifier writes notification records for report events. Fan-out is
// best-effort and happens after the primary report write; there is no
// transaction across the two collections.
type Notifier struct {
	notifications repository.NotificationRepository
}

func NewNotifier(notifications repository.NotificationRepository) *Notifier {
	return &Notifier{notifications: notifications}
}

// ReportSubmitted files a success record for the submitter and an info record
// for the admin mailbox.
func (n *Notifier) ReportSubmitted(ctx context.Context, report *models.Report) error {
	timeStr := fmt.Sprintf("%s, %s", report.Date, report.Time)
	now := time.Now()
	return n.notifications.InsertMany(ctx, []models.Notification{
		{
			ReportID:  report.ID,
			Title:     "Report Submitted",
			Category:  report.Category,
			Details:   fmt.Sprintf("Description: %s", report.Description),
			Time:      timeStr,
			Status:    models.NotifSuccess,
			Recipient: models.RecipientUser,
			Email:     report.UserEmail,
			CreatedAt: now,
		},
		{
			ReportID:  report.ID,
			Title:     "Report Submitted",
			Category:  report.Category,
			Details:   fmt.Sprintf("New report by %s", report.Name),
			Time:      timeStr,
			Status:    models.NotifInfo,
			Recipient: models.RecipientAdmin,
			Email:     AdminMailbox,
			CreatedAt: now,
		},
	})
}

// StatusChanged files a single admin-facing info record. The submitter gets
// no copy on a pure status change.
func (n *Notifier) StatusChanged(ctx context.Context, report *models.Report, status string) error {
	now := time.Now()
	return n.notifications.Insert(ctx, &models.Notification{
		ReportID:  report.ID,
		Title:     "Report status updated",
		Details:   fmt.Sprintf("Status changed to %q", status),
		Time:      FormatDisplayTime(now),
		Status:    models.NotifInfo,
		Recipient: models.RecipientAdmin,
		Email:     AdminMailbox,
		CreatedAt: now,
	})
}

// AdminMessage files an info record for the submitter and one for the admin
// mailbox.
func (n *Notifier) AdminMessage(ctx context.Context, report *models.Report, message string) error {
	now := time.Now()
	timeStr := FormatDisplayTime(now)
	return n.notifications.InsertMany(ctx, []models.Notification{
		{
			ReportID:  report.ID,
			Title:     "Message from Admin",
			Details:   message,
			Time:      timeStr,
			Status:    models.NotifInfo,
			Recipient: models.RecipientUser,
			Email:     report.UserEmail,
			CreatedAt: now,
		},
		{
			ReportID:  report.ID,
			Title:     "Message from Admin",
			Details:   message,
			Time:      timeStr,
			Status:    models.NotifInfo,
			Recipient: models.RecipientAdmin,
			Email:     AdminMailbox,
			CreatedAt: now,
		},
	})
}
