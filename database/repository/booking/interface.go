package bookingRepo

import (
	"context"

	"hostnhome/models"
)

// BookingRepository defines storage for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, vendorID, id string) (*models.Booking, error)
	// List filters by status, payment status and stay dates, newest first.
	List(ctx context.Context, vendorID string, filter models.BookingFilter) ([]models.Booking, error)
	UpdatePayment(ctx context.Context, vendorID, id string, paid float64, paymentStatus string) (*models.Booking, error)
}
