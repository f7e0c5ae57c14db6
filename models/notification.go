package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification status tags as used by the dispatcher.
const (
	NotifInfo    = "info"
	NotifWarning = "warning"
	NotifSuccess = "success"
)

// Recipient channels.
const (
	RecipientUser  = "user"
	RecipientAdmin = "admin"
)

// Notification is an immutable event record. ReportID is advisory only,
// nothing enforces the reference. Time is a display string; CreatedAt is
// the sortable creation timestamp.
type Notification struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ReportID  primitive.ObjectID `json:"reportId,omitempty" bson:"reportId,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Details   string             `json:"details" bson:"details"`
	Time      string             `json:"time" bson:"time"`
	Status    string             `json:"status" bson:"status"`
	Category  string             `json:"category,omitempty" bson:"category,omitempty"`
	Recipient string             `json:"recipient" bson:"recipient"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
