package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"hostnhome/database"
	"hostnhome/models"
	"hostnhome/services/quotation"
	"hostnhome/utils"

	"go.uber.org/zap"
)

func (s *DefaultBookingService) ListBookings(ctx context.Context, vendorID string, filter models.BookingFilter) ([]models.Booking, error) {
	bookings, err := s.Repo.List(ctx, vendorID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	query := strings.ToLower(strings.TrimSpace(filter.Search))
	if query == "" {
		return bookings, nil
	}
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if utils.MatchesSearch(query, b.GuestName, b.Email, b.Phone) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, vendorID, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, vendorID, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return b, nil
}

// ConvertQuotation creates a pending booking from an accepted quotation. The
// quotation is claimed with a conditional accepted to converted update before
// the booking is written, so concurrent conversions produce one booking. The
// quotation's data must still pass every wizard step's rules.
func (s *DefaultBookingService) ConvertQuotation(ctx context.Context, vendorID, quotationID string) (*models.Booking, error) {
	q, err := s.Quotations.Get(ctx, vendorID, quotationID)
	if err != nil {
		return nil, err
	}
	if q.Status != models.QuotationAccepted {
		return nil, NewNotAcceptedError(q.Status)
	}
	if result := quotation.ValidateAll(quotation.FormFromQuotation(*q)); !result.Valid() {
		return nil, NewInvalidQuotationError(result.Strings())
	}

	if _, err := s.Quotations.UpdateStatus(ctx, vendorID, q.ID, models.QuotationConverted); err != nil {
		var statusErr *quotation.StatusError
		if !errors.As(err, &statusErr) {
			return nil, fmt.Errorf("failed to claim quotation: %w", err)
		}
		latest, getErr := s.Quotations.Get(ctx, vendorID, q.ID)
		if getErr != nil {
			return nil, getErr
		}
		return nil, NewNotAcceptedError(latest.Status)
	}

	b := &models.Booking{
		VendorID:      q.VendorID,
		QuotationID:   q.ID,
		ResortID:      q.ResortID,
		GuestName:     q.GuestName,
		Email:         q.Email,
		Phone:         q.Phone,
		CheckIn:       q.CheckIn,
		CheckOut:      q.CheckOut,
		Adults:        q.Adults,
		Children:      q.Children,
		Rooms:         q.Rooms,
		Status:        models.BookingPending,
		TotalAmount:   q.TotalAmount,
		PaidAmount:    0,
		PaymentStatus: models.PaymentPending,
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		if revertErr := s.Quotations.RevertConversion(ctx, vendorID, q.ID); revertErr != nil {
			zap.L().Error("ConvertQuotation: booking failed and quotation left converted",
				zap.String("quotationId", q.ID), zap.Error(revertErr))
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return b, nil
}

// RecordPayment sets the amount paid so far and derives the payment status.
func (s *DefaultBookingService) RecordPayment(ctx context.Context, vendorID, id string, paid float64) (*models.Booking, error) {
	if paid < 0 || math.IsNaN(paid) || math.IsInf(paid, 0) {
		return nil, ErrInvalidPayment
	}
	current, err := s.GetBooking(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdatePayment(ctx, vendorID, id, paid, models.PaymentStatusFor(current.TotalAmount, paid))
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return updated, nil
}
