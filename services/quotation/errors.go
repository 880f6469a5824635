package quotation

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound   = errors.New("quotation wizard session not found or expired")
	ErrSubmitInProgress  = errors.New("a submission for this quotation is already in progress")
	ErrSessionBusy       = errors.New("the quotation wizard is being updated by another request")
	ErrNotAtPricingStep  = errors.New("a quotation can only be submitted from the pricing step")
	ErrUnknownField      = errors.New("unknown quotation field")
	ErrQuotationNotFound = errors.New("quotation not found")
)

// ValidationError is returned when a step fails its rules.
type ValidationError struct {
	Step   Step
	Fields ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d has %d invalid field(s)", e.Step, len(e.Fields))
}

// StatusError rejects a quotation status change.
type StatusError struct {
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewTransitionError(from, to string) error {
	return &StatusError{
		Code:    "invalidTransition",
		Message: fmt.Sprintf("cannot move quotation from %q to %q", from, to),
	}
}

func NewUnknownStatusError(status string) error {
	return &StatusError{
		Code:    "unknownStatus",
		Message: fmt.Sprintf("%q is not a quotation status", status),
	}
}
