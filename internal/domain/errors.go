package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest signals a structurally invalid search request.
	// It is the only condition surfaced to callers; malformed optional
	// filters degrade with a warning instead.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNotFound signals a missing listing.
	ErrNotFound = errors.New("not found")
	// ErrCorpusUnavailable signals that the corpus store could not be reached.
	ErrCorpusUnavailable = errors.New("corpus unavailable")
)

// InvalidRequestError wraps ErrInvalidRequest with the offending field.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidRequest.Error(), e.Field, e.Reason)
}

func (e *InvalidRequestError) Unwrap() error { return ErrInvalidRequest }

// NewInvalidRequest creates an invalid request error for a field.
func NewInvalidRequest(field, reason string) error {
	return &InvalidRequestError{Field: field, Reason: reason}
}
