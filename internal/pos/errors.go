package pos

import "errors"

// Validation failures, rejected before any write. The caller corrects the
// cart and resubmits.
var (
	ErrEmptyCart           = errors.New("cart has no items")
	ErrNegativeTotal       = errors.New("computed total is negative")
	ErrInsufficientPayment = errors.New("amount paid is less than the total")
	ErrInvalidPayment      = errors.New("unsupported payment method")
	ErrInvalidCustomer     = errors.New("customer not found")
)

// ErrConflict covers concurrent commit collisions (sale number or stock
// exhaustion race). The whole commit may be safely retried from validation.
var ErrConflict = errors.New("concurrent commit conflict")
