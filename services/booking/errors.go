package booking

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidPayment  = errors.New("paid amount must be a non-negative number")
)

type ConversionError struct {
	Code    string
	Message string
	Fields  map[string]string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotAcceptedError(status string) error {
	return &ConversionError{
		Code:    "notAccepted",
		Message: fmt.Sprintf("only accepted quotations can be converted, this one is %q", status),
	}
}

func NewInvalidQuotationError(fields map[string]string) error {
	return &ConversionError{
		Code:    "invalidQuotation",
		Message: "quotation data does not pass validation",
		Fields:  fields,
	}
}
