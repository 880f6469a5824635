package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Mongo().Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create booking indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "vendor_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "quotation_id", Value: 1}}, Options: options.Index().SetSparse(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func byVendor(vendorID string, filter bson.M) bson.M {
	if vendorID != "" {
		filter["vendor_id"] = vendorID
	}
	return filter
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, vendorID, id string) (*models.Booking, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, byVendor(vendorID, bson.M{"id": id})).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) List(ctx context.Context, vendorID string, filter models.BookingFilter) ([]models.Booking, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	query := byVendor(vendorID, bson.M{})
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.PaymentStatus != "" {
		query["payment_status"] = filter.PaymentStatus
	}
	if filter.DateFrom != nil {
		query["check_in"] = bson.M{"$gte": *filter.DateFrom}
	}
	if filter.DateTo != nil {
		query["check_out"] = bson.M{"$lte": *filter.DateTo}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) UpdatePayment(ctx context.Context, vendorID, id string, paid float64, paymentStatus string) (*models.Booking, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"paid_amount":    paid,
		"payment_status": paymentStatus,
		"updated_at":     time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, byVendor(vendorID, bson.M{"id": id}), update, opts).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return &booking, nil
}
