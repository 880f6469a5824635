package models

import (
	"encoding/json"
	"testing"
)

func TestFlexibleIDAcceptsNumbersAndStrings(t *testing.T) {
	var resorts []Resort
	body := `[{"id": 7, "name": "Palm Grove"}, {"id": "a1b2", "name": "Hill View"}, {"id": null, "name": "Draft"}]`
	if err := json.Unmarshal([]byte(body), &resorts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resorts[0].ID != "7" || !resorts[0].ID.Equal("7") {
		t.Errorf("numeric id decoded as %q", resorts[0].ID)
	}
	if resorts[1].ID != "a1b2" {
		t.Errorf("string id decoded as %q", resorts[1].ID)
	}
	if resorts[2].ID != "" {
		t.Errorf("null id decoded as %q", resorts[2].ID)
	}

	var bad Resort
	if err := json.Unmarshal([]byte(`{"id": true}`), &bad); err == nil {
		t.Error("expected boolean id to be rejected")
	}
}

func TestQuotationStatusColor(t *testing.T) {
	cases := map[string]string{
		"sent":      ColorSuccess,
		"Accepted":  ColorSuccess,
		"draft":     ColorTextSecondary,
		"rejected":  ColorError,
		"EXPIRED":   ColorError,
		"converted": ColorWarning,
	}
	for status, want := range cases {
		if got := QuotationStatusColor(status); got != want {
			t.Errorf("QuotationStatusColor(%q) = %s, want %s", status, got, want)
		}
	}
}

func TestBookingStatusColor(t *testing.T) {
	cases := map[string]string{
		"confirmed": ColorSuccess,
		"pending":   ColorWarning,
		"cancelled": ColorError,
		"completed": ColorInfo,
		"enquiry":   ColorTextSecondary,
	}
	for status, want := range cases {
		if got := BookingStatusColor(status); got != want {
			t.Errorf("BookingStatusColor(%q) = %s, want %s", status, got, want)
		}
	}
}

func TestQuotationTransitions(t *testing.T) {
	if !CanTransitionQuotation(QuotationDraft, QuotationSent) {
		t.Error("draft -> sent should be allowed")
	}
	if !CanTransitionQuotation(QuotationAccepted, QuotationConverted) {
		t.Error("accepted -> converted should be allowed")
	}
	if CanTransitionQuotation(QuotationDraft, QuotationConverted) {
		t.Error("draft -> converted should be rejected")
	}
	if CanTransitionQuotation(QuotationConverted, QuotationDraft) {
		t.Error("converted is terminal")
	}
}

func TestPaymentStatusFor(t *testing.T) {
	if got := PaymentStatusFor(1000, 0); got != PaymentPending {
		t.Errorf("got %s", got)
	}
	if got := PaymentStatusFor(1000, 400); got != PaymentPartial {
		t.Errorf("got %s", got)
	}
	if got := PaymentStatusFor(1000, 1000); got != PaymentPaid {
		t.Errorf("got %s", got)
	}
	b := Booking{TotalAmount: 1000, PaidAmount: 1200}
	if b.Balance() != -200 {
		t.Errorf("balance should not be clamped, got %v", b.Balance())
	}
}
