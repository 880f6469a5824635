package quotationRepo

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

const queryTimeout = 5 * time.Second

// MongoQuotationRepo implements QuotationRepository using MongoDB.
type MongoQuotationRepo struct {
	coll *mongo.Collection
}

// NewMongoQuotationRepo creates the repository over the "quotations" collection.
func NewMongoQuotationRepo() QuotationRepository {
	repo := &MongoQuotationRepo{coll: database.Mongo().Collection("quotations")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create quotation indexes", zap.Error(err))
	}
	return repo
}

func scoped(vendorID string, filter bson.M) bson.M {
	if vendorID != "" {
		filter["vendor_id"] = vendorID
	}
	return filter
}

func (r *MongoQuotationRepo) Create(ctx context.Context, q *models.Quotation) error {
	ctx, cancel := database.NewContext(ctx, queryTimeout)
	defer cancel()

	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	q.CreatedAt = now
	q.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, q); err != nil {
		return fmt.Errorf("failed to insert quotation: %w", err)
	}
	return nil
}

func (r *MongoQuotationRepo) GetByID(ctx context.Context, vendorID, id string) (*models.Quotation, error) {
	ctx, cancel := database.NewContext(ctx, queryTimeout)
	defer cancel()

	var q models.Quotation
	err := r.coll.FindOne(ctx, scoped(vendorID, bson.M{"id": id})).Decode(&q)
	if err == mongo.ErrNoDocuments {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotation: %w", err)
	}
	return &q, nil
}

func (r *MongoQuotationRepo) List(ctx context.Context, vendorID string, filter models.QuotationFilter) ([]models.Quotation, error) {
	ctx, cancel := database.NewContext(ctx, queryTimeout)
	defer cancel()

	query := scoped(vendorID, bson.M{})
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	created := bson.M{}
	if filter.DateFrom != nil {
		created["$gte"] = *filter.DateFrom
	}
	if filter.DateTo != nil {
		created["$lte"] = *filter.DateTo
	}
	if len(created) > 0 {
		query["created_at"] = created
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	defer cursor.Close(ctx)

	quotations := []models.Quotation{}
	if err := cursor.All(ctx, &quotations); err != nil {
		return nil, fmt.Errorf("failed to decode quotations: %w", err)
	}
	return quotations, nil
}

func (r *MongoQuotationRepo) UpdateStatus(ctx context.Context, vendorID, id, from, to string) error {
	updateCtx, cancel := database.NewContext(ctx, queryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(updateCtx, scoped(vendorID, bson.M{"id": id, "status": from}), update)
	if err != nil {
		return fmt.Errorf("failed to update quotation status: %w", err)
	}
	if res.MatchedCount == 0 {
		if _, err := r.GetByID(ctx, vendorID, id); err != nil {
			return err
		}
		return database.ErrConflict
	}
	return nil
}

func (r *MongoQuotationRepo) Delete(ctx context.Context, vendorID, id string) error {
	ctx, cancel := database.NewContext(ctx, queryTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, scoped(vendorID, bson.M{"id": id}))
	if err != nil {
		return fmt.Errorf("failed to delete quotation: %w", err)
	}
	if res.DeletedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *MongoQuotationRepo) ExpireBefore(ctx context.Context, cutoff time.Time) (int, error) {
	ctx, cancel := database.NewContext(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"status":   bson.M{"$in": []string{models.QuotationDraft, models.QuotationSent}},
		"check_in": bson.M{"$lt": cutoff},
	}
	update := bson.M{"$set": bson.M{"status": models.QuotationExpired, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to expire quotations: %w", err)
	}
	return int(res.ModifiedCount), nil
}
