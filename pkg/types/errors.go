package types

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of the validation error family. Specific
// validation sentinels wrap it, so callers can match the whole family
// with errors.Is(err, ErrValidation) or a specific cause.
var ErrValidation = errors.New("validation failed")

// Validation sentinels. Each wraps ErrValidation.
var (
	ErrEmptyTitle       = fmt.Errorf("%w: title must not be empty", ErrValidation)
	ErrNegativePrice    = fmt.Errorf("%w: price must not be negative", ErrValidation)
	ErrNegativeQuantity = fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	ErrQuantityTooLow   = fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	ErrInvalidID        = fmt.Errorf("%w: invalid record ID", ErrValidation)
)

// Repository operation errors.
var (
	// ErrNotFound is returned when an operation references a row that
	// does not exist. No state change happens in that case.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock is returned when a sale or stock decrement
	// would drive a product's quantity on hand below zero. The stock is
	// left unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")
)
