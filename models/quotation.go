package models

import "time"

// Quotation is a draft price/availability offer made to a guest. Stored and
// serialized in snake_case; this is the single canonical shape.
type Quotation struct {
	ID          string    `bson:"id" json:"id"`
	VendorID    string    `bson:"vendor_id" json:"vendor_id"`
	ResortID    string    `bson:"resort_id" json:"resort_id"`
	GuestName   string    `bson:"guest_name" json:"guest_name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone" json:"phone"`
	CheckIn     time.Time `bson:"check_in" json:"check_in"`
	CheckOut    time.Time `bson:"check_out" json:"check_out"`
	Adults      int       `bson:"adults" json:"adults"`
	Children    int       `bson:"children" json:"children"`
	Rooms       int       `bson:"rooms" json:"rooms"`
	Status      string    `bson:"status" json:"status"`
	TotalAmount float64   `bson:"total_amount" json:"total_amount"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// QuotationPayload is the normalized record the quotation wizard hands to storage.
type QuotationPayload struct {
	ResortID    string    `json:"resort_id"`
	GuestName   string    `json:"guest_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	Adults      int       `json:"adults"`
	Children    int       `json:"children"`
	Rooms       int       `json:"rooms"`
	TotalAmount float64   `json:"total_amount"`
	Notes       *string   `json:"notes,omitempty"`
	Status      string    `json:"status"`
}

// ToQuotation builds the stored record for a payload owned by vendorID.
func (p QuotationPayload) ToQuotation(vendorID string) Quotation {
	q := Quotation{
		VendorID:    vendorID,
		ResortID:    p.ResortID,
		GuestName:   p.GuestName,
		Email:       p.Email,
		Phone:       p.Phone,
		CheckIn:     p.CheckIn,
		CheckOut:    p.CheckOut,
		Adults:      p.Adults,
		Children:    p.Children,
		Rooms:       p.Rooms,
		Status:      p.Status,
		TotalAmount: p.TotalAmount,
	}
	if p.Notes != nil {
		q.Notes = *p.Notes
	}
	if q.Status == "" {
		q.Status = QuotationDraft
	}
	return q
}

// QuotationFilter narrows quotation listings. Search matches guest name,
// email and phone case-insensitively.
type QuotationFilter struct {
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string
}
