package quotationRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"hostnhome/database"
	"hostnhome/models"

	"github.com/google/uuid"
)

// MemoryQuotationRepo keeps quotations in process. Used by tests and local runs.
type MemoryQuotationRepo struct {
	mu         sync.RWMutex
	quotations map[string]models.Quotation
	now        func() time.Time
}

func NewMemoryQuotationRepo() *MemoryQuotationRepo {
	return &MemoryQuotationRepo{
		quotations: make(map[string]models.Quotation),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func owned(vendorID string, q models.Quotation) bool {
	return vendorID == "" || q.VendorID == vendorID
}

func (r *MemoryQuotationRepo) Create(_ context.Context, q *models.Quotation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	now := r.now()
	q.CreatedAt = now
	q.UpdatedAt = now
	r.quotations[q.ID] = *q
	return nil
}

func (r *MemoryQuotationRepo) GetByID(_ context.Context, vendorID, id string) (*models.Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.quotations[id]
	if !ok || !owned(vendorID, q) {
		return nil, database.ErrNotFound
	}
	return &q, nil
}

func (r *MemoryQuotationRepo) List(_ context.Context, vendorID string, filter models.QuotationFilter) ([]models.Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Quotation{}
	for _, q := range r.quotations {
		if !owned(vendorID, q) {
			continue
		}
		if filter.Status != "" && q.Status != filter.Status {
			continue
		}
		if filter.DateFrom != nil && q.CreatedAt.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && q.CreatedAt.After(*filter.DateTo) {
			continue
		}
		out = append(out, q)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryQuotationRepo) UpdateStatus(_ context.Context, vendorID, id, from, to string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.quotations[id]
	if !ok || !owned(vendorID, q) {
		return database.ErrNotFound
	}
	if q.Status != from {
		return database.ErrConflict
	}
	q.Status = to
	q.UpdatedAt = r.now()
	r.quotations[id] = q
	return nil
}

func (r *MemoryQuotationRepo) Delete(_ context.Context, vendorID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.quotations[id]
	if !ok || !owned(vendorID, q) {
		return database.ErrNotFound
	}
	delete(r.quotations, id)
	return nil
}

func (r *MemoryQuotationRepo) ExpireBefore(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, q := range r.quotations {
		if q.Status != models.QuotationDraft && q.Status != models.QuotationSent {
			continue
		}
		if !q.CheckIn.Before(cutoff) {
			continue
		}
		q.Status = models.QuotationExpired
		q.UpdatedAt = r.now()
		r.quotations[id] = q
		n++
	}
	return n, nil
}
