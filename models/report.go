package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const StatusPending = "Pending"

// StatusResolved is terminal: no further status entries are accepted once
// the last history entry carries it.
const StatusResolved = "Resolved"

type Message struct {
	Text   string `json:"text" bson:"text"`
	Sender string `json:"sender" bson:"sender"`
	Time   string `json:"time" bson:"time"`
}

type StatusEntry struct {
	Status    string    `json:"status" bson:"status"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Report struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Category      string             `json:"category" bson:"category"`
	Description   string             `json:"description" bson:"description"`
	Location      string             `json:"location" bson:"location"`
	Date          string             `json:"date" bson:"date"`
	Time          string             `json:"time" bson:"time"`
	PhotoURL      string             `json:"photoUrl" bson:"photoUrl"`
	Name          string             `json:"name" bson:"name"`
	UserEmail     string             `json:"userEmail" bson:"userEmail"`
	Messages      []Message          `json:"messages" bson:"messages"`
	StatusHistory []StatusEntry      `json:"statusHistory" bson:"statusHistory"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

// CurrentStatus returns the status of the last history entry.
func (r *Report) CurrentStatus() string {
	if len(r.StatusHistory) == 0 {
		return ""
	}
	return r.StatusHistory[len(r.StatusHistory)-1].Status
}
