package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fixmyrp-backend/models"
)

// In-memory implementations for tests. They mirror the MongoDB behaviour the
// handlers rely on: unique emails, newest-first listing, unconditional
// field sets that report ErrNotFound when nothing matched.

type MemoryUserRepository struct {
	mu    sync.Mutex
	users []models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) Insert(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) UpdateName(_ context.Context, email, name string) error {
	return r.set(email, func(u *models.User) { u.Name = name })
}

func (r *MemoryUserRepository) UpdateContact(_ context.Context, email, contactNumber string) error {
	return r.set(email, func(u *models.User) { u.ContactNumber = contactNumber })
}

func (r *MemoryUserRepository) UpdateEmail(_ context.Context, email, newEmail string) error {
	return r.set(email, func(u *models.User) { u.Email = newEmail })
}

func (r *MemoryUserRepository) UpdatePassword(_ context.Context, email, passwordHash string) error {
	return r.set(email, func(u *models.User) { u.Password = passwordHash })
}

func (r *MemoryUserRepository) set(email string, apply func(*models.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == email {
			apply(&r.users[i])
			return nil
		}
	}
	return ErrNotFound
}

type MemoryAdminRepository struct {
	mu     sync.Mutex
	admins []models.Admin
}

func NewMemoryAdminRepository() *MemoryAdminRepository {
	return &MemoryAdminRepository{}
}

func (r *MemoryAdminRepository) Insert(_ context.Context, admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Email == admin.Email {
			return ErrDuplicate
		}
	}
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	if admin.Role == "" {
		admin.Role = "admin"
	}
	r.admins = append(r.admins, *admin)
	return nil
}

func (r *MemoryAdminRepository) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Email == email {
			admin := a
			return &admin, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryAdminRepository) UpdateName(_ context.Context, email, name string) error {
	return r.set(email, func(a *models.Admin) { a.Name = name })
}

func (r *MemoryAdminRepository) UpdateContact(_ context.Context, email, contactNumber string) error {
	return r.set(email, func(a *models.Admin) { a.ContactNumber = contactNumber })
}

func (r *MemoryAdminRepository) UpdateEmail(_ context.Context, email, newEmail string) error {
	return r.set(email, func(a *models.Admin) { a.Email = newEmail })
}

func (r *MemoryAdminRepository) UpdatePassword(_ context.Context, email, passwordHash string) error {
	return r.set(email, func(a *models.Admin) { a.Password = passwordHash })
}

func (r *MemoryAdminRepository) set(email string, apply func(*models.Admin)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.admins {
		if r.admins[i].Email == email {
			apply(&r.admins[i])
			return nil
		}
	}
	return ErrNotFound
}

type MemoryReportRepository struct {
	mu      sync.Mutex
	reports []models.Report
}

func NewMemoryReportRepository() *MemoryReportRepository {
	return &MemoryReportRepository{}
}

func cloneReport(r models.Report) models.Report {
	clone := r
	clone.Messages = append([]models.Message(nil), r.Messages...)
	clone.StatusHistory = append([]models.StatusEntry(nil), r.StatusHistory...)
	return clone
}

func (r *MemoryReportRepository) Insert(_ context.Context, report *models.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	r.reports = append(r.reports, cloneReport(*report))
	return nil
}

func (r *MemoryReportRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rpt := range r.reports {
		if rpt.ID == id {
			clone := cloneReport(rpt)
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryReportRepository) FindAll(_ context.Context) ([]models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// insertion order is creation order, so reverse for newest first
	out := make([]models.Report, 0, len(r.reports))
	for i := len(r.reports) - 1; i >= 0; i-- {
		out = append(out, cloneReport(r.reports[i]))
	}
	return out, nil
}

// UpdateFields mirrors the Mongo $set contract by round-tripping the stored
// document through bson: any field can be set, unknown ones vanish when the
// document is decoded back into the model, just like a real collection.
func (r *MemoryReportRepository) UpdateFields(_ context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reports {
		if r.reports[i].ID != id {
			continue
		}

		raw, err := bson.Marshal(r.reports[i])
		if err != nil {
			return nil, err
		}
		var doc bson.M
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		for key, value := range fields {
			if key == "_id" || key == "id" {
				continue
			}
			doc[key] = value
		}
		raw, err = bson.Marshal(doc)
		if err != nil {
			return nil, err
		}
		var updated models.Report
		if err := bson.Unmarshal(raw, &updated); err != nil {
			return nil, err
		}

		r.reports[i] = cloneReport(updated)
		clone := cloneReport(updated)
		return &clone, nil
	}
	return nil, ErrNotFound
}

func (r *MemoryReportRepository) AppendStatus(_ context.Context, id primitive.ObjectID, entry models.StatusEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reports {
		if r.reports[i].ID == id {
			r.reports[i].StatusHistory = append(r.reports[i].StatusHistory, entry)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryReportRepository) AppendMessage(_ context.Context, id primitive.ObjectID, message models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reports {
		if r.reports[i].ID == id {
			r.reports[i].Messages = append(r.reports[i].Messages, message)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryReportRepository) UpdateNameByEmail(_ context.Context, userEmail, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for i := range r.reports {
		if r.reports[i].UserEmail == userEmail {
			r.reports[i].Name = name
			count++
		}
	}
	return count, nil
}

func (r *MemoryReportRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reports {
		if r.reports[i].ID == id {
			r.reports = append(r.reports[:i], r.reports[i+1:]...)
			return nil
		}
	}
	return nil
}

type MemoryNotificationRepository struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{}
}

func (r *MemoryNotificationRepository) Insert(_ context.Context, notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if notification.ID.IsZero() {
		notification.ID = primitive.NewObjectID()
	}
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *MemoryNotificationRepository) InsertMany(ctx context.Context, notifications []models.Notification) error {
	for i := range notifications {
		if err := r.Insert(ctx, &notifications[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemoryNotificationRepository) Find(_ context.Context, email, recipient string) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Notification, 0)
	for i := len(r.notifications) - 1; i >= 0; i-- {
		n := r.notifications[i]
		if email != "" && n.Email != email {
			continue
		}
		if recipient != "" && n.Recipient != recipient {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *MemoryNotificationRepository) DeleteByReport(_ context.Context, reportID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.notifications[:0]
	var deleted int64
	for _, n := range r.notifications {
		if n.ReportID == reportID {
			deleted++
			continue
		}
		kept = append(kept, n)
	}
	r.notifications = kept
	return deleted, nil
}

func (r *MemoryNotificationRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = nil
	return nil
}

type MemoryFeedbackRepository struct {
	mu        sync.Mutex
	feedbacks []models.Feedback
}

func NewMemoryFeedbackRepository() *MemoryFeedbackRepository {
	return &MemoryFeedbackRepository{}
}

func (r *MemoryFeedbackRepository) Insert(_ context.Context, feedback *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if feedback.ID.IsZero() {
		feedback.ID = primitive.NewObjectID()
	}
	r.feedbacks = append(r.feedbacks, *feedback)
	return nil
}

func (r *MemoryFeedbackRepository) FindAll(_ context.Context) ([]models.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Feedback, 0, len(r.feedbacks))
	for i := len(r.feedbacks) - 1; i >= 0; i-- {
		out = append(out, r.feedbacks[i])
	}
	return out, nil
}
