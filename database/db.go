package db

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fixmyrp-backend/utils"
)

const databaseName = "fixmyrp_db"

var Client *mongo.Client

var (
	UserCollection         *mongo.Collection
	AdminCollection        *mongo.Collection
	ReportCollection       *mongo.Collection
	NotificationCollection *mongo.Collection
	FeedbackCollection     *mongo.Collection
)

// InitDB connects to MongoDB and wires up the collection handles.
func InitDB() {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		utils.ErrorLogger.Fatal("MONGODB_URI not set in .env")
	}

	clientOptions := options.Client().ApplyURI(mongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		utils.ErrorLogger.Fatal("Failed to connect to MongoDB: ", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		utils.ErrorLogger.Fatal("Failed to ping MongoDB: ", err)
	}

	Client = client
	UserCollection = client.Database(databaseName).Collection("users")
	AdminCollection = client.Database(databaseName).Collection("admins")
	ReportCollection = client.Database(databaseName).Collection("reports")
	NotificationCollection = client.Database(databaseName).Collection("notifications")
	FeedbackCollection = client.Database(databaseName).Collection("feedbacks")

	if err := ensureIndexes(ctx); err != nil {
		utils.ErrorLogger.Fatal("Failed to create indexes: ", err)
	}

	utils.InfoLogger.Info("Connected to MongoDB")
}

// ensureIndexes enforces email uniqueness on the account collections and
// keeps the newest-first queries on reports and notifications indexed.
func ensureIndexes(ctx context.Context) error {
	emailUnique := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := UserCollection.Indexes().CreateOne(ctx, emailUnique); err != nil {
		return err
	}
	if _, err := AdminCollection.Indexes().CreateOne(ctx, emailUnique); err != nil {
		return err
	}

	createdAtDesc := mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}}
	if _, err := ReportCollection.Indexes().CreateOne(ctx, createdAtDesc); err != nil {
		return err
	}
	if _, err := NotificationCollection.Indexes().CreateOne(ctx, createdAtDesc); err != nil {
		return err
	}
	return nil
}

// DisconnectDB closes the MongoDB connection.
func DisconnectDB() {
	if Client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Disconnect(ctx); err != nil {
		utils.ErrorLogger.Error("Failed to disconnect MongoDB: ", err)
		return
	}
	utils.InfoLogger.Info("Disconnected from MongoDB")
}

// OpenCollection returns a collection by name.
func OpenCollection(collectionName string) *mongo.Collection {
	return Client.Database(databaseName).Collection(collectionName)
}
