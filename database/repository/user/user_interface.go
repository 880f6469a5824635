package userRepo

import (
	"context"

	"hostnhome/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for operator account access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by email. It returns database.ErrNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByIDWithProjection retrieves a user by ID with a projection.
	GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.User, error)
}
