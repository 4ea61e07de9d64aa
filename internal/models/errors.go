package models

import (
	"errors"
	"fmt"
)

// Error constants for coordinator operations
var (
	ErrBeneficiaryNotFound  = errors.New("beneficiary not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrNotARaffle           = errors.New("activity is not a raffle")
	ErrActivityKindMismatch = errors.New("activity type cannot be changed")
	ErrRaffleCompleted      = errors.New("raffle already completed")
	ErrNoParticipants       = errors.New("raffle has no participants")
	ErrInvalidActivityType  = errors.New("invalid activity type")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidDate          = errors.New("invalid date, expected YYYY-MM-DD")
	ErrMissingField         = errors.New("missing required field")
	ErrStoreFailure         = errors.New("remote store failure")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrUnauthenticated      = errors.New("not authenticated")
)

// FieldError reports a required field left empty
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}

// StoreError wraps a failed remote store call
func StoreError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreFailure, op, err)
}
