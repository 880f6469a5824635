package quotation

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"hostnhome/models"
	"hostnhome/utils"

	"go.uber.org/zap"
)

// User-facing notices.
const (
	NoticeResortsFailed = "Failed to load resorts"
	NoticeFixErrors     = "Please fix the errors in the form"
	NoticeCreated       = "Quotation created successfully!"
	NoticeCreateFailed  = "Failed to create quotation"
)

const (
	defaultRooms          = "1"
	defaultAdults         = "2"
	defaultChildren       = "0"
	defaultAmount         = "0"
	wizardLoggerComponent = "quotation-wizard"
)

// Wizard is one in-progress quotation creation flow. It is owned by a single
// session; the mutex only guards the submission flag.
type Wizard struct {
	ID          string           `json:"id"`
	VendorID    string           `json:"vendorId"`
	CurrentStep Step             `json:"currentStep"`
	Form        QuotationForm    `json:"form"`
	Errors      ValidationResult `json:"errors"`
	Submitting  bool             `json:"submitting"`
	Resorts     []models.Resort  `json:"resorts"`
	Notice      string           `json:"notice,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`

	mu sync.Mutex
}

// NewWizard starts a flow at step 1 with check-in on now's date and a one night stay.
func NewWizard(vendorID string, now time.Time) *Wizard {
	return &Wizard{
		VendorID:    vendorID,
		CurrentStep: StepDetails,
		Form: QuotationForm{
			CheckIn:     utils.DateOnly(now),
			CheckOut:    utils.DateOnly(now.AddDate(0, 0, 1)),
			Rooms:       defaultRooms,
			Adults:      defaultAdults,
			Children:    defaultChildren,
			TotalAmount: defaultAmount,
			PaidAmount:  defaultAmount,
		},
		Errors:    ValidationResult{},
		Resorts:   []models.Resort{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetField sanitizes and stores a value and clears that field's error.
// No validation happens here.
func (w *Wizard) SetField(name FieldName, raw string) error {
	p := w.Form.field(name)
	if p == nil {
		return ErrUnknownField
	}
	*p = Sanitize(name, raw)
	delete(w.Errors, name)
	return nil
}

// Advance validates the current step. On success errors are cleared and the
// wizard moves forward, except at the pricing step, which only Submit leaves.
func (w *Wizard) Advance() bool {
	result := ValidateStep(w.CurrentStep, w.Form)
	if !result.Valid() {
		w.Errors = result
		return false
	}
	w.Errors = ValidationResult{}
	if w.CurrentStep >= StepPricing {
		return false
	}
	w.CurrentStep++
	return true
}

// Back steps backwards. At step 1 it reports cancellation and changes nothing.
func (w *Wizard) Back() (cancelled bool) {
	if w.CurrentStep > StepDetails {
		w.CurrentStep--
		return false
	}
	return true
}

// Selected resolves the chosen resort against the loaded list.
func (w *Wizard) Selected() *models.Resort {
	return FindResort(w.Resorts, w.Form.ResortID)
}

// Quote returns the derived nights, totals and display strings.
func (w *Wizard) Quote() DerivedQuote {
	return Derive(w.Form, w.Resorts)
}

// LoadResorts fetches the selectable resorts. A failure leaves an empty list
// and a notice; the wizard stays usable.
func (w *Wizard) LoadResorts(ctx context.Context, lister ResortLister) {
	resorts, err := lister.ListResorts(ctx, w.VendorID)
	if err != nil {
		zap.L().With(zap.String("component", wizardLoggerComponent)).
			Warn("loading resorts failed", zap.String("wizardId", w.ID), zap.Error(err))
		w.Resorts = []models.Resort{}
		w.Notice = NoticeResortsFailed
		return
	}
	if resorts == nil {
		resorts = []models.Resort{}
	}
	w.Resorts = resorts
	if w.Notice == NoticeResortsFailed {
		w.Notice = ""
	}
}

// Payload builds the normalized quotation record. Every step's rules must pass.
func (w *Wizard) Payload() (models.QuotationPayload, error) {
	if result := ValidateAll(w.Form); !result.Valid() {
		return models.QuotationPayload{}, &ValidationError{Step: w.CurrentStep, Fields: result}
	}

	f := w.Form
	checkIn, _ := utils.ParseWizardDate(f.CheckIn)
	checkOut, _ := utils.ParseWizardDate(f.CheckOut)
	adults, _ := strconv.Atoi(strings.TrimSpace(f.Adults))
	children, _ := strconv.Atoi(strings.TrimSpace(f.Children))
	rooms, _ := strconv.Atoi(strings.TrimSpace(f.Rooms))
	total, _ := utils.ParseNumber(f.TotalAmount)

	payload := models.QuotationPayload{
		ResortID:    f.ResortID,
		GuestName:   strings.TrimSpace(f.GuestName),
		Email:       strings.TrimSpace(f.Email),
		Phone:       strings.TrimSpace(f.Phone),
		CheckIn:     checkIn.UTC(),
		CheckOut:    checkOut.UTC(),
		Adults:      adults,
		Children:    children,
		Rooms:       rooms,
		TotalAmount: total,
		Status:      models.QuotationDraft,
	}
	if notes := strings.TrimSpace(f.Notes); notes != "" {
		payload.Notes = &notes
	}
	return payload, nil
}

// Submit creates the quotation from the pricing step. Only one submission may
// be in flight; on failure every field and the current step are kept so the
// caller can retry.
func (w *Wizard) Submit(ctx context.Context, creator QuotationCreator) (*models.Quotation, error) {
	w.mu.Lock()
	if w.Submitting {
		w.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	if w.CurrentStep != StepPricing {
		w.mu.Unlock()
		return nil, ErrNotAtPricingStep
	}
	if result := ValidatePricing(w.Form); !result.Valid() {
		w.Errors = result
		w.Notice = NoticeFixErrors
		w.mu.Unlock()
		return nil, &ValidationError{Step: StepPricing, Fields: result}
	}
	payload, err := w.Payload()
	if err != nil {
		if verr, ok := err.(*ValidationError); ok {
			w.Errors = verr.Fields
		}
		w.Notice = NoticeFixErrors
		w.mu.Unlock()
		return nil, err
	}
	w.Submitting = true
	w.mu.Unlock()

	created, err := creator.CreateQuotation(ctx, w.VendorID, payload)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.Submitting = false
	if err != nil {
		w.Notice = err.Error()
		if w.Notice == "" {
			w.Notice = NoticeCreateFailed
		}
		return nil, err
	}
	w.Errors = ValidationResult{}
	w.Notice = NoticeCreated
	return created, nil
}
