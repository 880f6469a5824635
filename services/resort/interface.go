package resort

import (
	"context"

	resortRepo "hostnhome/database/repository/resort"
	"hostnhome/models"
)

// ResortService manages a vendor's resorts. It also serves as the wizard's
// resort lister.
type ResortService interface {
	ListResorts(ctx context.Context, vendorID string) ([]models.Resort, error)
	GetResort(ctx context.Context, vendorID, id string) (*models.Resort, error)
	CreateResort(ctx context.Context, vendorID string, input models.ResortInput) (*models.Resort, error)
}

// DefaultResortService is the production implementation.
type DefaultResortService struct {
	Repo resortRepo.ResortRepository
}

func NewResortService(repo resortRepo.ResortRepository) *DefaultResortService {
	return &DefaultResortService{Repo: repo}
}
