package resortRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"hostnhome/database"
	"hostnhome/models"

	"github.com/google/uuid"
)

// MemoryResortRepo keeps resorts in process.
type MemoryResortRepo struct {
	mu      sync.RWMutex
	resorts []models.Resort
}

func NewMemoryResortRepo(seed ...models.Resort) *MemoryResortRepo {
	return &MemoryResortRepo{resorts: append([]models.Resort(nil), seed...)}
}

func (r *MemoryResortRepo) List(_ context.Context, vendorID string) ([]models.Resort, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Resort{}
	for _, res := range r.resorts {
		if vendorID == "" || res.VendorID == vendorID {
			out = append(out, res)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryResortRepo) GetByID(_ context.Context, vendorID, id string) (*models.Resort, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, res := range r.resorts {
		if res.ID.Equal(id) && (vendorID == "" || res.VendorID == vendorID) {
			found := res
			return &found, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *MemoryResortRepo) Create(_ context.Context, resort *models.Resort) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if resort.ID == "" {
		resort.ID = models.FlexibleID(uuid.New().String())
	}
	now := time.Now().UTC()
	resort.CreatedAt = now
	resort.UpdatedAt = now
	r.resorts = append(r.resorts, *resort)
	return nil
}

func (r *MemoryResortRepo) SlugExists(_ context.Context, vendorID, slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, res := range r.resorts {
		if res.Slug == slug && (vendorID == "" || res.VendorID == vendorID) {
			return true, nil
		}
	}
	return false, nil
}
