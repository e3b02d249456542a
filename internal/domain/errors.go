package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPersistence       = errors.New("persistence failure")
	ErrValidation        = errors.New("validation failure")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrCurrencyMismatch  = errors.New("currency mismatch")
	ErrUnavailable       = errors.New("product is not available")
)

type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product: %s", e.ProductName)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
