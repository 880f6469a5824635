package quotation

import (
	"context"

	"hostnhome/models"
)

// ResortLister supplies the resorts a vendor can quote for.
type ResortLister interface {
	ListResorts(ctx context.Context, vendorID string) ([]models.Resort, error)
}

// QuotationCreator persists a submitted quotation. Returned errors carry a
// message that is shown to the user verbatim.
type QuotationCreator interface {
	CreateQuotation(ctx context.Context, vendorID string, payload models.QuotationPayload) (*models.Quotation, error)
}

// WizardSessionService owns server-side wizard sessions between requests.
type WizardSessionService interface {
	Start(ctx context.Context, vendorID string) (*Wizard, error)
	Get(ctx context.Context, sessionID string) (*Wizard, error)
	SetFields(ctx context.Context, sessionID string, values map[string]string) (*Wizard, error)
	Advance(ctx context.Context, sessionID string) (*Wizard, bool, error)
	Back(ctx context.Context, sessionID string) (*Wizard, bool, error)
	ReloadResorts(ctx context.Context, sessionID string) (*Wizard, error)
	Submit(ctx context.Context, sessionID string) (*Wizard, *models.Quotation, error)
	Cancel(ctx context.Context, sessionID string) error
}

// QuotationService manages stored quotations.
type QuotationService interface {
	QuotationCreator
	List(ctx context.Context, vendorID string, filter models.QuotationFilter) ([]models.Quotation, error)
	StatusCounts(ctx context.Context, vendorID string) (map[string]int, error)
	Get(ctx context.Context, vendorID, id string) (*models.Quotation, error)
	UpdateStatus(ctx context.Context, vendorID, id, status string) (*models.Quotation, error)
	RevertConversion(ctx context.Context, vendorID, id string) error
	Delete(ctx context.Context, vendorID, id string) error
	ExpireStale(ctx context.Context) (int, error)
}
