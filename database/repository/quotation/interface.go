package quotationRepo

import (
	"context"
	"time"

	"hostnhome/models"
)

// QuotationRepository defines storage for quotations. An empty vendorID
// addresses every vendor's records.
type QuotationRepository interface {
	// Create inserts a quotation, assigning ID and timestamps.
	Create(ctx context.Context, q *models.Quotation) error
	// GetByID returns database.ErrNotFound for unknown ids.
	GetByID(ctx context.Context, vendorID, id string) (*models.Quotation, error)
	// List filters by status and created_at, newest first. Search is not applied here.
	List(ctx context.Context, vendorID string, filter models.QuotationFilter) ([]models.Quotation, error)
	// UpdateStatus moves a quotation from one status to another in a single
	// conditional write. It returns database.ErrConflict when the stored
	// status is no longer from.
	UpdateStatus(ctx context.Context, vendorID, id, from, to string) error
	Delete(ctx context.Context, vendorID, id string) error
	// ExpireBefore marks draft and sent quotations whose check-in is before cutoff as expired.
	ExpireBefore(ctx context.Context, cutoff time.Time) (int, error)
}
