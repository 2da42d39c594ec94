package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange     = errors.New("invalid time range")
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// InvalidRangeError reports an unknown range token or malformed custom dates.
type InvalidRangeError struct {
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidRange, e.Reason)
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// StoreUnavailableError wraps a failed record store query.
type StoreUnavailableError struct {
	Collection string
	Cause      error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("%s: query %s: %v", ErrStoreUnavailable, e.Collection, e.Cause)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Cause
}

func (e *StoreUnavailableError) Is(target error) bool {
	return target == ErrStoreUnavailable
}
