package resortRepo

import (
	"context"
	"fmt"
	"time"

	"hostnhome/database"
	"hostnhome/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoResortRepo implements ResortRepository using MongoDB.
type MongoResortRepo struct {
	coll *mongo.Collection
}

func NewMongoResortRepo() ResortRepository {
	repo := &MongoResortRepo{coll: database.Mongo().Collection("resorts")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create resort indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoResortRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "vendor_id", Value: 1}, {Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func byVendor(vendorID string) bson.M {
	if vendorID == "" {
		return bson.M{}
	}
	return bson.M{"vendor_id": vendorID}
}

func (r *MongoResortRepo) List(ctx context.Context, vendorID string) ([]models.Resort, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, byVendor(vendorID), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list resorts: %w", err)
	}
	defer cursor.Close(ctx)

	resorts := []models.Resort{}
	if err := cursor.All(ctx, &resorts); err != nil {
		return nil, fmt.Errorf("failed to decode resorts: %w", err)
	}
	return resorts, nil
}

func (r *MongoResortRepo) GetByID(ctx context.Context, vendorID, id string) (*models.Resort, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	filter := byVendor(vendorID)
	filter["id"] = id

	var resort models.Resort
	err := r.coll.FindOne(ctx, filter).Decode(&resort)
	if err == mongo.ErrNoDocuments {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resort: %w", err)
	}
	return &resort, nil
}

func (r *MongoResortRepo) Create(ctx context.Context, resort *models.Resort) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	if resort.ID == "" {
		resort.ID = models.FlexibleID(uuid.New().String())
	}
	now := time.Now().UTC()
	resort.CreatedAt = now
	resort.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, resort); err != nil {
		return fmt.Errorf("failed to create resort: %w", err)
	}
	return nil
}

func (r *MongoResortRepo) SlugExists(ctx context.Context, vendorID, slug string) (bool, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	filter := byVendor(vendorID)
	filter["slug"] = slug
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return n > 0, nil
}
