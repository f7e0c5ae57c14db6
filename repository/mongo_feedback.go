package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fixmyrp-backend/models"
)

type MongoFeedbackRepository struct {
	coll *mongo.Collection
}

func NewMongoFeedbackRepository(coll *mongo.Collection) *MongoFeedbackRepository {
	return &MongoFeedbackRepository{coll: coll}
}

func (r *MongoFeedbackRepository) Insert(ctx context.Context, feedback *models.Feedback) error {
	result, err := r.coll.InsertOne(ctx, feedback)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		feedback.ID = id
	}
	return nil
}

func (r *MongoFeedbackRepository) FindAll(ctx context.Context) ([]models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, fmt.Errorf("decode feedback: %w", err)
	}
	return feedbacks, nil
}
