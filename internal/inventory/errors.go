package inventory

import (
	"errors"
	"fmt"
)

// ErrInvalidQuantity rejects zero or negative stock mutations.
var ErrInvalidQuantity = errors.New("stock quantity must be positive")

// InsufficientStockError is returned when a decrement asks for more units
// than the product has. A sale commit hitting this rolls back entirely.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

// ProductNotFoundError is returned when a mutation references a product that
// does not exist.
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}
