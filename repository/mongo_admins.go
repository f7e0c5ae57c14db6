package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"fixmyrp-backend/models"
)

type MongoAdminRepository struct {
	coll *mongo.Collection
}

func NewMongoAdminRepository(coll *mongo.Collection) *MongoAdminRepository {
	return &MongoAdminRepository{coll: coll}
}

func (r *MongoAdminRepository) Insert(ctx context.Context, admin *models.Admin) error {
	if admin.Role == "" {
		admin.Role = "admin"
	}
	result, err := r.coll.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		admin.ID = id
	}
	return nil
}

func (r *MongoAdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &admin, nil
}

func (r *MongoAdminRepository) UpdateName(ctx context.Context, email, name string) error {
	return r.setField(ctx, email, "name", name)
}

func (r *MongoAdminRepository) UpdateContact(ctx context.Context, email, contactNumber string) error {
	return r.setField(ctx, email, "contactNumber", contactNumber)
}

func (r *MongoAdminRepository) UpdateEmail(ctx context.Context, email, newEmail string) error {
	return r.setField(ctx, email, "email", newEmail)
}

func (r *MongoAdminRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	return r.setField(ctx, email, "password", passwordHash)
}

func (r *MongoAdminRepository) setField(ctx context.Context, email, field string, value interface{}) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update admin %s: %w", field, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
