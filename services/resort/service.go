package resort

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hostnhome/database"
	"hostnhome/models"
	"hostnhome/utils"

	"go.uber.org/zap"
)

func (s *DefaultResortService) ListResorts(ctx context.Context, vendorID string) ([]models.Resort, error) {
	resorts, err := s.Repo.List(ctx, vendorID)
	if err != nil {
		zap.L().Error("ListResorts: failed to fetch resorts", zap.String("vendorId", vendorID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch resorts: %w", err)
	}
	return resorts, nil
}

func (s *DefaultResortService) GetResort(ctx context.Context, vendorID, id string) (*models.Resort, error) {
	res, err := s.Repo.GetByID(ctx, vendorID, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrResortNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resort: %w", err)
	}
	return res, nil
}

func validateInput(input models.ResortInput) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		fields["name"] = "Resort name is required"
	}
	if strings.TrimSpace(input.Location) == "" {
		fields["location"] = "Location is required"
	}
	for _, img := range input.Images {
		if !utils.IsValidURL(img) {
			fields["images"] = "Please enter valid image URLs"
			break
		}
	}
	switch input.Status {
	case "", models.ResortActive, models.ResortInactive:
	default:
		fields["status"] = "Status must be active or inactive"
	}
	return fields
}

// CreateResort validates the input, derives a slug from the name when none is
// given and stores the resort as active unless told otherwise.
func (s *DefaultResortService) CreateResort(ctx context.Context, vendorID string, input models.ResortInput) (*models.Resort, error) {
	if fields := validateInput(input); len(fields) > 0 {
		return nil, &InputError{Fields: fields}
	}

	slug := utils.Slugify(input.Slug)
	if slug == "" {
		slug = utils.Slugify(input.Name)
	}
	taken, err := s.Repo.SlugExists(ctx, vendorID, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if taken {
		return nil, ErrSlugTaken
	}

	status := input.Status
	if status == "" {
		status = models.ResortActive
	}
	res := &models.Resort{
		VendorID:    vendorID,
		Name:        strings.TrimSpace(input.Name),
		Location:    strings.TrimSpace(input.Location),
		Description: strings.TrimSpace(input.Description),
		Slug:        slug,
		Images:      input.Images,
		Amenities:   input.Amenities,
		Status:      status,
	}
	if err := s.Repo.Create(ctx, res); err != nil {
		zap.L().Error("CreateResort: failed to store resort", zap.String("vendorId", vendorID), zap.Error(err))
		return nil, fmt.Errorf("failed to create resort: %w", err)
	}
	return res, nil
}
