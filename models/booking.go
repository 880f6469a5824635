package models

import "time"

// Booking represents a confirmed stay, usually converted from an accepted quotation.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	VendorID      string    `bson:"vendor_id" json:"vendor_id"`
	QuotationID   string    `bson:"quotation_id,omitempty" json:"quotation_id,omitempty"`
	ResortID      string    `bson:"resort_id" json:"resort_id"`
	GuestName     string    `bson:"guest_name" json:"guest_name"`
	Email         string    `bson:"email" json:"email"`
	Phone         string    `bson:"phone" json:"phone"`
	CheckIn       time.Time `bson:"check_in" json:"check_in"`
	CheckOut      time.Time `bson:"check_out" json:"check_out"`
	Adults        int       `bson:"adults" json:"adults"`
	Children      int       `bson:"children" json:"children"`
	Rooms         int       `bson:"rooms" json:"rooms"`
	Status        string    `bson:"status" json:"status"`
	TotalAmount   float64   `bson:"total_amount" json:"total_amount"`
	PaidAmount    float64   `bson:"paid_amount" json:"paid_amount"`
	PaymentStatus string    `bson:"payment_status" json:"payment_status"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// Balance is the amount still owed. It is not clamped.
func (b Booking) Balance() float64 {
	return b.TotalAmount - b.PaidAmount
}

// BookingFilter narrows booking listings. DateFrom bounds check-in and DateTo bounds check-out.
type BookingFilter struct {
	Status        string
	PaymentStatus string
	DateFrom      *time.Time
	DateTo        *time.Time
	Search        string
}
