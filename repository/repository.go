// Package repository defines per-entity persistence interfaces with MongoDB
// implementations. Handlers depend on the interfaces only, so tests can swap
// in the in-memory versions from memory.go.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fixmyrp-backend/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateName(ctx context.Context, email, name string) error
	UpdateContact(ctx context.Context, email, contactNumber string) error
	UpdateEmail(ctx context.Context, email, newEmail string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

type AdminRepository interface {
	Insert(ctx context.Context, admin *models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	UpdateName(ctx context.Context, email, name string) error
	UpdateContact(ctx context.Context, email, contactNumber string) error
	UpdateEmail(ctx context.Context, email, newEmail string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

type ReportRepository interface {
	Insert(ctx context.Context, report *models.Report) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error)
	// FindAll returns every report, newest first.
	FindAll(ctx context.Context) ([]models.Report, error)
	// UpdateFields sets arbitrary top-level fields and returns the updated
	// document.
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Report, error)
	AppendStatus(ctx context.Context, id primitive.ObjectID, entry models.StatusEntry) error
	AppendMessage(ctx context.Context, id primitive.ObjectID, message models.Message) error
	// UpdateNameByEmail rewrites the denormalized submitter name on every
	// report with a matching userEmail, returning the number touched.
	UpdateNameByEmail(ctx context.Context, userEmail, name string) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type NotificationRepository interface {
	Insert(ctx context.Context, notification *models.Notification) error
	InsertMany(ctx context.Context, notifications []models.Notification) error
	// Find filters by email and/or recipient; empty strings match everything.
	// Newest first.
	Find(ctx context.Context, email, recipient string) ([]models.Notification, error)
	// DeleteByReport removes every notification referencing the report.
	DeleteByReport(ctx context.Context, reportID primitive.ObjectID) (int64, error)
	Clear(ctx context.Context) error
}

type FeedbackRepository interface {
	Insert(ctx context.Context, feedback *models.Feedback) error
	// FindAll returns every feedback entry, newest first.
	FindAll(ctx context.Context) ([]models.Feedback, error)
}
