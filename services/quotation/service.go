package quotation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hostnhome/database"
	quotationRepo "hostnhome/database/repository/quotation"
	"hostnhome/models"

	"go.uber.org/zap"
)

// DefaultQuotationService is the production QuotationService.
type DefaultQuotationService struct {
	Repo quotationRepo.QuotationRepository
	Now  func() time.Time
}

func NewQuotationService(repo quotationRepo.QuotationRepository) *DefaultQuotationService {
	return &DefaultQuotationService{Repo: repo, Now: time.Now}
}

func (s *DefaultQuotationService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func notFound(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return ErrQuotationNotFound
	}
	return err
}

// CreateQuotation stores a wizard payload. The returned error message is
// meant for the user, so storage details only go to the log.
func (s *DefaultQuotationService) CreateQuotation(ctx context.Context, vendorID string, payload models.QuotationPayload) (*models.Quotation, error) {
	q := payload.ToQuotation(vendorID)
	if err := s.Repo.Create(ctx, &q); err != nil {
		zap.L().Error("CreateQuotation: failed to store quotation", zap.String("vendorId", vendorID), zap.Error(err))
		return nil, errors.New(NoticeCreateFailed)
	}
	return &q, nil
}

func (s *DefaultQuotationService) List(ctx context.Context, vendorID string, filter models.QuotationFilter) ([]models.Quotation, error) {
	quotations, err := s.Repo.List(ctx, vendorID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotations: %w", err)
	}
	return FilterQuotations(quotations, filter), nil
}

func (s *DefaultQuotationService) StatusCounts(ctx context.Context, vendorID string) (map[string]int, error) {
	quotations, err := s.Repo.List(ctx, vendorID, models.QuotationFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotations: %w", err)
	}
	return CountByStatus(quotations), nil
}

func (s *DefaultQuotationService) Get(ctx context.Context, vendorID, id string) (*models.Quotation, error) {
	q, err := s.Repo.GetByID(ctx, vendorID, id)
	if err != nil {
		return nil, notFound(err)
	}
	return q, nil
}

// UpdateStatus moves a quotation along its lifecycle. Moves outside the
// allowed transitions are rejected with a *StatusError.
func (s *DefaultQuotationService) UpdateStatus(ctx context.Context, vendorID, id, status string) (*models.Quotation, error) {
	if !models.IsQuotationStatus(status) {
		return nil, NewUnknownStatusError(status)
	}
	current, err := s.Get(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransitionQuotation(current.Status, status) {
		return nil, NewTransitionError(current.Status, status)
	}
	err = s.Repo.UpdateStatus(ctx, vendorID, id, current.Status, status)
	if errors.Is(err, database.ErrConflict) {
		latest, getErr := s.Get(ctx, vendorID, id)
		if getErr != nil {
			return nil, getErr
		}
		return nil, NewTransitionError(latest.Status, status)
	}
	if err != nil {
		return nil, notFound(err)
	}
	return s.Get(ctx, vendorID, id)
}

// RevertConversion puts a converted quotation back to accepted. It is only
// used to undo a conversion whose booking could not be stored.
func (s *DefaultQuotationService) RevertConversion(ctx context.Context, vendorID, id string) error {
	err := s.Repo.UpdateStatus(ctx, vendorID, id, models.QuotationConverted, models.QuotationAccepted)
	if errors.Is(err, database.ErrConflict) {
		return NewTransitionError(models.QuotationConverted, models.QuotationAccepted)
	}
	return notFound(err)
}

func (s *DefaultQuotationService) Delete(ctx context.Context, vendorID, id string) error {
	return notFound(s.Repo.Delete(ctx, vendorID, id))
}

// ExpireStale marks open quotations whose check-in day has passed as expired.
func (s *DefaultQuotationService) ExpireStale(ctx context.Context) (int, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	n, err := s.Repo.ExpireBefore(ctx, today)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		zap.L().Info("expired stale quotations", zap.Int("count", n))
	}
	return n, nil
}
