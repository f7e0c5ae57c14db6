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

type MongoReportRepository struct {
	coll *mongo.Collection
}

func NewMongoReportRepository(coll *mongo.Collection) *MongoReportRepository {
	return &MongoReportRepository{coll: coll}
}

func (r *MongoReportRepository) Insert(ctx context.Context, report *models.Report) error {
	result, err := r.coll.InsertOne(ctx, report)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		report.ID = id
	}
	return nil
}

func (r *MongoReportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	var report models.Report
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find report: %w", err)
	}
	return &report, nil
}

func (r *MongoReportRepository) FindAll(ctx context.Context) ([]models.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}
	return reports, nil
}

func (r *MongoReportRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Report, error) {
	set := bson.M{}
	for key, value := range fields {
		// the document id is not editable
		if key == "_id" || key == "id" {
			continue
		}
		set[key] = value
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Report
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}
	return &updated, nil
}

func (r *MongoReportRepository) AppendStatus(ctx context.Context, id primitive.ObjectID, entry models.StatusEntry) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"statusHistory": entry}})
	if err != nil {
		return fmt.Errorf("append status: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoReportRepository) AppendMessage(ctx context.Context, id primitive.ObjectID, message models.Message) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"messages": message}})
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoReportRepository) UpdateNameByEmail(ctx context.Context, userEmail, name string) (int64, error) {
	result, err := r.coll.UpdateMany(ctx, bson.M{"userEmail": userEmail}, bson.M{"$set": bson.M{"name": name}})
	if err != nil {
		return 0, fmt.Errorf("propagate name: %w", err)
	}
	return result.ModifiedCount, nil
}

func (r *MongoReportRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}
