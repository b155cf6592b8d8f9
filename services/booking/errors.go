package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyPaid is returned when a paid booking is confirmed again.
	ErrAlreadyPaid = errors.New("booking already paid")
	// ErrPaymentMismatch means the payment intent does not settle this booking.
	ErrPaymentMismatch = errors.New("payment intent does not match booking")
)

// ValidationError rejects malformed booking or payment input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
