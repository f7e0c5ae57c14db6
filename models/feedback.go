package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Feedback struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FeedbackText  string             `json:"feedbackText" bson:"feedbackText"`
	Rating        int                `json:"rating" bson:"rating"`
	Name          string             `json:"name,omitempty" bson:"name,omitempty"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty"`
	ContactNumber string             `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}
