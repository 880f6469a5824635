package database

import (
	"context"
	"errors"
	"log"
	"time"

	"hostnhome/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by every repository when a record does not exist
// or belongs to another vendor.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned by conditional updates when the record no longer
// holds the expected value.
var ErrConflict = errors.New("record was changed by another request")

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
}

// Mongo returns the application database.
func Mongo() *mongo.Database {
	return MongoClient.Database(config.AppConfig.DatabaseName)
}

// NewContext creates a context with the given timeout.
func NewContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}
