package bookingRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"hostnhome/database"
	"hostnhome/models"

	"github.com/google/uuid"
)

// MemoryBookingRepo keeps bookings in process.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *MemoryBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *MemoryBookingRepo) GetByID(_ context.Context, vendorID, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok || (vendorID != "" && b.VendorID != vendorID) {
		return nil, database.ErrNotFound
	}
	return &b, nil
}

func (r *MemoryBookingRepo) List(_ context.Context, vendorID string, filter models.BookingFilter) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range r.bookings {
		switch {
		case vendorID != "" && b.VendorID != vendorID:
			continue
		case filter.Status != "" && b.Status != filter.Status:
			continue
		case filter.PaymentStatus != "" && b.PaymentStatus != filter.PaymentStatus:
			continue
		case filter.DateFrom != nil && b.CheckIn.Before(*filter.DateFrom):
			continue
		case filter.DateTo != nil && b.CheckOut.After(*filter.DateTo):
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryBookingRepo) UpdatePayment(_ context.Context, vendorID, id string, paid float64, paymentStatus string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok || (vendorID != "" && b.VendorID != vendorID) {
		return nil, database.ErrNotFound
	}
	b.PaidAmount = paid
	b.PaymentStatus = paymentStatus
	b.UpdatedAt = time.Now().UTC()
	r.bookings[id] = b
	return &b, nil
}
