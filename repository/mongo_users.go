package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"fixmyrp-backend/models"
)

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(coll *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{coll: coll}
}

func (r *MongoUserRepository) Insert(ctx context.Context, user *models.User) error {
	result, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepository) UpdateName(ctx context.Context, email, name string) error {
	return r.setField(ctx, email, "name", name)
}

func (r *MongoUserRepository) UpdateContact(ctx context.Context, email, contactNumber string) error {
	return r.setField(ctx, email, "contactNumber", contactNumber)
}

func (r *MongoUserRepository) UpdateEmail(ctx context.Context, email, newEmail string) error {
	return r.setField(ctx, email, "email", newEmail)
}

func (r *MongoUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	return r.setField(ctx, email, "password", passwordHash)
}

func (r *MongoUserRepository) setField(ctx context.Context, email, field string, value interface{}) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update user %s: %w", field, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
