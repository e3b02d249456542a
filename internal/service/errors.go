package service

import (
	"errors"
	"fmt"

	"github.com/nikolayk812/gallery-shop/internal/domain"
)

var businessErrors = []error{
	domain.ErrEmptyCart,
	domain.ErrInsufficientStock,
	domain.ErrValidation,
	domain.ErrNotFound,
	domain.ErrInvalidTransition,
	domain.ErrCurrencyMismatch,
	domain.ErrUnavailable,
	domain.ErrPersistence,
}

// classify passes business errors through and marks everything else as a
// persistence failure.
func classify(err error) error {
	if err == nil {
		return nil
	}

	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return err
		}
	}

	return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
}
