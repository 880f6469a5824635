package quotation

import (
	"strconv"
	"strings"
	"time"

	"hostnhome/models"
	"hostnhome/utils"
)

// Step is a wizard stage.
type Step int

const (
	StepDetails Step = 1 // property and booking details
	StepGuest   Step = 2
	StepPricing Step = 3
)

// FieldName names a wizard form field. The string values are the keys clients
// send and the keys of ValidationResult.
type FieldName string

const (
	FieldResortID    FieldName = "resortId"
	FieldCheckIn     FieldName = "checkIn"
	FieldCheckOut    FieldName = "checkOut"
	FieldRooms       FieldName = "rooms"
	FieldAdults      FieldName = "adults"
	FieldChildren    FieldName = "children"
	FieldGuestName   FieldName = "guestName"
	FieldEmail       FieldName = "email"
	FieldPhone       FieldName = "phone"
	FieldNotes       FieldName = "notes"
	FieldTotalAmount FieldName = "totalAmount"
	FieldPaidAmount  FieldName = "paidAmount"
)

const phoneDigits = 10

// QuotationForm holds raw user input for every wizard step. Values are kept as
// strings exactly as sanitized; parsing happens in the stage rules and in Payload.
type QuotationForm struct {
	// Step 1
	ResortID string `json:"resortId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Rooms    string `json:"rooms"`
	Adults   string `json:"adults"`
	Children string `json:"children"`
	// Step 2
	GuestName string `json:"guestName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
	// Step 3
	TotalAmount string `json:"totalAmount"`
	PaidAmount  string `json:"paidAmount"`
}

func (f *QuotationForm) field(name FieldName) *string {
	switch name {
	case FieldResortID:
		return &f.ResortID
	case FieldCheckIn:
		return &f.CheckIn
	case FieldCheckOut:
		return &f.CheckOut
	case FieldRooms:
		return &f.Rooms
	case FieldAdults:
		return &f.Adults
	case FieldChildren:
		return &f.Children
	case FieldGuestName:
		return &f.GuestName
	case FieldEmail:
		return &f.Email
	case FieldPhone:
		return &f.Phone
	case FieldNotes:
		return &f.Notes
	case FieldTotalAmount:
		return &f.TotalAmount
	case FieldPaidAmount:
		return &f.PaidAmount
	}
	return nil
}

// Get returns the stored value of a field.
func (f QuotationForm) Get(name FieldName) (string, bool) {
	p := f.field(name)
	if p == nil {
		return "", false
	}
	return *p, true
}

// Sanitize applies the input filter for a field: counts keep digits only, the
// phone keeps at most ten digits, and amounts keep digits and one decimal point.
func Sanitize(name FieldName, raw string) string {
	switch name {
	case FieldRooms, FieldAdults, FieldChildren:
		return utils.DigitsOnly(raw)
	case FieldPhone:
		digits := utils.DigitsOnly(raw)
		if len(digits) > phoneDigits {
			digits = digits[:phoneDigits]
		}
		return digits
	case FieldTotalAmount, FieldPaidAmount:
		return utils.DecimalOnly(raw)
	}
	return raw
}

// ParseFieldName maps a client key to a FieldName.
func ParseFieldName(key string) (FieldName, bool) {
	name := FieldName(strings.TrimSpace(key))
	var probe QuotationForm
	return name, probe.field(name) != nil
}

// FormFromQuotation rebuilds wizard input from a stored quotation so the stage
// rules can be run against it again.
func FormFromQuotation(q models.Quotation) QuotationForm {
	return QuotationForm{
		ResortID:    q.ResortID,
		CheckIn:     q.CheckIn.UTC().Format(time.RFC3339Nano),
		CheckOut:    q.CheckOut.UTC().Format(time.RFC3339Nano),
		Rooms:       strconv.Itoa(q.Rooms),
		Adults:      strconv.Itoa(q.Adults),
		Children:    strconv.Itoa(q.Children),
		GuestName:   q.GuestName,
		Email:       q.Email,
		Phone:       q.Phone,
		Notes:       q.Notes,
		TotalAmount: strconv.FormatFloat(q.TotalAmount, 'f', -1, 64),
		PaidAmount:  defaultAmount,
	}
}
