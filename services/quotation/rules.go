package quotation

import (
	"strconv"
	"strings"

	"hostnhome/utils"
)

// Field error messages shown next to the inputs.
const (
	msgSelectResort     = "Please select a resort"
	msgInvalidCheckIn   = "Please enter a valid check-in date"
	msgInvalidCheckOut  = "Please enter a valid check-out date"
	msgCheckOutOrder    = "Check-out date must be after check-in date"
	msgRoomsMin         = "Number of rooms must be at least 1"
	msgAdultsMin        = "Number of adults must be at least 1"
	msgChildrenNegative = "Number of children cannot be negative"
	msgGuestRequired    = "Guest name is required"
	msgEmailRequired    = "Email is required"
	msgEmailInvalid     = "Please enter a valid email address"
	msgPhoneRequired    = "Phone number is required"
	msgPhoneInvalid     = "Please enter a valid 10-digit phone number"
	msgTotalInvalid     = "Total amount must be a positive number"
)

// ValidationResult maps failing fields to messages. An empty result is valid.
type ValidationResult map[FieldName]string

func (r ValidationResult) Valid() bool {
	return len(r) == 0
}

// Merge copies other's failures into r. r must not be nil.
func (r ValidationResult) Merge(other ValidationResult) {
	for k, v := range other {
		r[k] = v
	}
}

// Strings converts the result to plain string keys for JSON responses.
func (r ValidationResult) Strings() map[string]string {
	out := make(map[string]string, len(r))
	for k, v := range r {
		out[string(k)] = v
	}
	return out
}

func parseCount(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil
}

// ValidateDetails checks step 1. Every rule runs; failures are collected.
func ValidateDetails(form QuotationForm) ValidationResult {
	result := ValidationResult{}

	if form.ResortID == "" {
		result[FieldResortID] = msgSelectResort
	}

	checkIn, checkInOK := utils.ParseWizardDate(form.CheckIn)
	checkOut, checkOutOK := utils.ParseWizardDate(form.CheckOut)
	if !checkInOK {
		result[FieldCheckIn] = msgInvalidCheckIn
	}
	switch {
	case !checkOutOK:
		result[FieldCheckOut] = msgInvalidCheckOut
	case checkInOK && !checkOut.After(checkIn):
		result[FieldCheckOut] = msgCheckOutOrder
	}

	if rooms, ok := parseCount(form.Rooms); !ok || rooms < 1 {
		result[FieldRooms] = msgRoomsMin
	}
	if adults, ok := parseCount(form.Adults); !ok || adults < 1 {
		result[FieldAdults] = msgAdultsMin
	}
	if children, ok := parseCount(form.Children); !ok || children < 0 {
		result[FieldChildren] = msgChildrenNegative
	}

	return result
}

// ValidateGuest checks step 2.
func ValidateGuest(form QuotationForm) ValidationResult {
	result := ValidationResult{}

	if strings.TrimSpace(form.GuestName) == "" {
		result[FieldGuestName] = msgGuestRequired
	}

	email := strings.TrimSpace(form.Email)
	switch {
	case email == "":
		result[FieldEmail] = msgEmailRequired
	case !utils.IsValidEmail(email):
		result[FieldEmail] = msgEmailInvalid
	}

	switch {
	case strings.TrimSpace(form.Phone) == "":
		result[FieldPhone] = msgPhoneRequired
	case len(utils.DigitsOnly(form.Phone)) != phoneDigits:
		result[FieldPhone] = msgPhoneInvalid
	}

	return result
}

// ValidatePricing checks step 3. Zero is an accepted total.
func ValidatePricing(form QuotationForm) ValidationResult {
	result := ValidationResult{}
	if total, ok := utils.ParseNumber(form.TotalAmount); !ok || total < 0 {
		result[FieldTotalAmount] = msgTotalInvalid
	}
	return result
}

// ValidateStep runs the rules for a single step.
func ValidateStep(step Step, form QuotationForm) ValidationResult {
	switch step {
	case StepDetails:
		return ValidateDetails(form)
	case StepGuest:
		return ValidateGuest(form)
	case StepPricing:
		return ValidatePricing(form)
	}
	return ValidationResult{}
}

// ValidateAll runs every step's rules and merges the failures.
func ValidateAll(form QuotationForm) ValidationResult {
	result := ValidateDetails(form)
	result.Merge(ValidateGuest(form))
	result.Merge(ValidatePricing(form))
	return result
}
