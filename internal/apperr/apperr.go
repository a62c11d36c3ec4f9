// Package apperr holds the error taxonomy shared by the settlement and
// reporting operations. Callers test with errors.Is against the sentinels.
package apperr

import (
	"errors"
	"fmt"

	"card-admin/internal/store"
)

var (
	ErrInvalidInput = errors.New("invalid_request")
	ErrNotFound     = errors.New("not_found")
	ErrInternal     = errors.New("internal_error")
)

func InvalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

func NotFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

// Internal tags a store or unexpected failure. The cause stays in the chain
// for logging but transports only expose the code.
func Internal(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInternal, err)
}

// FromStore converts a store error into the taxonomy, treating
// store.ErrNotFound as a missing what.
func FromStore(op, what string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return NotFound(what)
	}
	return Internal(op, err)
}

// Code returns the wire code for err.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return ErrInvalidInput.Error()
	case errors.Is(err, ErrNotFound):
		return ErrNotFound.Error()
	default:
		return ErrInternal.Error()
	}
}
