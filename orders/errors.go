package orders

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOrderNotFound is returned when an unknown order id is read.
	ErrOrderNotFound = errors.New("order not found")
	// ErrCheckoutInProgress is returned when another checkout for the same
	// user already holds the commit lock.
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// ValidationError reports the payment fields that were missing or invalid.
// It is recoverable: nothing has been persisted when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing payment fields: " + strings.Join(e.Fields, ", ")
}
