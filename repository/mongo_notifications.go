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

type MongoNotificationRepository struct {
	coll *mongo.Collection
}

func NewMongoNotificationRepository(coll *mongo.Collection) *MongoNotificationRepository {
	return &MongoNotificationRepository{coll: coll}
}

func (r *MongoNotificationRepository) Insert(ctx context.Context, notification *models.Notification) error {
	result, err := r.coll.InsertOne(ctx, notification)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		notification.ID = id
	}
	return nil
}

func (r *MongoNotificationRepository) InsertMany(ctx context.Context, notifications []models.Notification) error {
	docs := make([]interface{}, 0, len(notifications))
	for i := range notifications {
		docs = append(docs, notifications[i])
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert notifications: %w", err)
	}
	return nil
}

func (r *MongoNotificationRepository) Find(ctx context.Context, email, recipient string) ([]models.Notification, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	if recipient != "" {
		filter["recipient"] = recipient
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return notifications, nil
}

func (r *MongoNotificationRepository) DeleteByReport(ctx context.Context, reportID primitive.ObjectID) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"reportId": reportID})
	if err != nil {
		return 0, fmt.Errorf("delete notifications: %w", err)
	}
	return result.DeletedCount, nil
}

func (r *MongoNotificationRepository) Clear(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	return nil
}
