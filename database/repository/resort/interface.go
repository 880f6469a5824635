package resortRepo

import (
	"context"

	"hostnhome/models"
)

// ResortRepository defines storage for resorts. An empty vendorID addresses
// every vendor's resorts.
type ResortRepository interface {
	// List returns resorts newest first.
	List(ctx context.Context, vendorID string) ([]models.Resort, error)
	GetByID(ctx context.Context, vendorID, id string) (*models.Resort, error)
	Create(ctx context.Context, resort *models.Resort) error
	SlugExists(ctx context.Context, vendorID, slug string) (bool, error)
}
