package booking

import (
	"context"

	bookingRepo "hostnhome/database/repository/booking"
	"hostnhome/models"
	"hostnhome/services/quotation"
)

// BookingService manages confirmed stays.
type BookingService interface {
	ListBookings(ctx context.Context, vendorID string, filter models.BookingFilter) ([]models.Booking, error)
	GetBooking(ctx context.Context, vendorID, id string) (*models.Booking, error)
	// ConvertQuotation turns an accepted quotation into a pending booking.
	ConvertQuotation(ctx context.Context, vendorID, quotationID string) (*models.Booking, error)
	RecordPayment(ctx context.Context, vendorID, id string, paid float64) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	Quotations quotation.QuotationService
}

func NewBookingService(repo bookingRepo.BookingRepository, quotations quotation.QuotationService) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Quotations: quotations}
}
