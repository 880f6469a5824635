package models

import "strings"

// Quotation statuses.
const (
	QuotationDraft     = "draft"
	QuotationSent      = "sent"
	QuotationAccepted  = "accepted"
	QuotationRejected  = "rejected"
	QuotationExpired   = "expired"
	QuotationConverted = "converted"
)

// Booking statuses.
const (
	BookingEnquiry   = "enquiry"
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Payment statuses.
const (
	PaymentPending  = "pending"
	PaymentPartial  = "partial"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Resort statuses.
const (
	ResortActive   = "active"
	ResortInactive = "inactive"
)

// Palette used by clients to tint status chips.
const (
	ColorSuccess       = "#22c55e"
	ColorError         = "#ef4444"
	ColorWarning       = "#f59e0b"
	ColorInfo          = "#3b82f6"
	ColorTextSecondary = "#6b7280"
)

var quotationTransitions = map[string][]string{
	QuotationDraft:    {QuotationSent, QuotationRejected, QuotationExpired},
	QuotationSent:     {QuotationAccepted, QuotationRejected, QuotationExpired},
	QuotationAccepted: {QuotationConverted},
}

// CanTransitionQuotation reports whether a quotation may move from one status to another.
func CanTransitionQuotation(from, to string) bool {
	for _, next := range quotationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsQuotationStatus reports whether s names a known quotation status.
func IsQuotationStatus(s string) bool {
	switch s {
	case QuotationDraft, QuotationSent, QuotationAccepted, QuotationRejected, QuotationExpired, QuotationConverted:
		return true
	}
	return false
}

func QuotationStatusColor(status string) string {
	switch strings.ToLower(status) {
	case QuotationSent, QuotationAccepted:
		return ColorSuccess
	case QuotationDraft:
		return ColorTextSecondary
	case QuotationRejected, QuotationExpired:
		return ColorError
	default:
		return ColorWarning
	}
}

func BookingStatusColor(status string) string {
	switch strings.ToLower(status) {
	case BookingConfirmed:
		return ColorSuccess
	case BookingPending:
		return ColorWarning
	case BookingCancelled:
		return ColorError
	case BookingCompleted:
		return ColorInfo
	default:
		return ColorTextSecondary
	}
}

// PaymentStatusFor derives the payment status from the amount paid so far.
func PaymentStatusFor(total, paid float64) string {
	switch {
	case paid <= 0:
		return PaymentPending
	case paid < total:
		return PaymentPartial
	default:
		return PaymentPaid
	}
}
