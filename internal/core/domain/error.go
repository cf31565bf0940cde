package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound       = errors.New("data not found")
	ErrConflictingData    = errors.New("data conflicts with existing data in unique column")
	ErrTransactionFailure = errors.New("transaction failed")

	// * Reference errors.
	ErrUnknownOrder   = fmt.Errorf("%w: unknown order", ErrDataNotFound)
	ErrUnknownService = fmt.Errorf("%w: unknown service", ErrDataNotFound)
	ErrUnknownClient  = fmt.Errorf("%w: unknown client", ErrDataNotFound)

	// * Validation errors.
	ErrValidation         = errors.New("validation error")
	ErrBadRequest         = fmt.Errorf("%w: error parsing request", ErrValidation)
	ErrMissingField       = fmt.Errorf("%w: required field is missing", ErrValidation)
	ErrNoUpdatedData      = fmt.Errorf("%w: no data to update", ErrValidation)
	ErrDateInPast         = fmt.Errorf("%w: date is before today", ErrValidation)
	ErrOrderDateImmutable = fmt.Errorf("%w: order date cannot be changed", ErrValidation)
	ErrInvalidQuantity    = fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	ErrInvalidPrice       = fmt.Errorf("%w: unit price must not be negative", ErrValidation)
	ErrPricePrecision     = fmt.Errorf("%w: unit price has more than two decimals", ErrInvalidPrice)
	ErrPriceTooLarge      = fmt.Errorf("%w: unit price is out of range", ErrInvalidPrice)
	ErrDuplicateLine      = fmt.Errorf("%w: service appears twice in the order", ErrValidation)

	// * Business errors.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// CapacityError carries the reason an order was refused by the capacity policy.
type CapacityError struct {
	Reason CapacityReason
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCapacityExceeded, e.Reason)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

func NewCapacityError(reason CapacityReason) error {
	return &CapacityError{Reason: reason}
}
