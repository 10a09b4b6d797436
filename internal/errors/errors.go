package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a request failed validation before handler logic ran
var ErrInvalidInput = errors.New("invalid input")

// PermanentError marks a startup configuration error. The process must abort
// before opening any listener when it encounters one.
type PermanentError struct {
	Cause error
}

func (e *PermanentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("permanent error: %v", e.Cause)
	}
	return "permanent error"
}

func (e *PermanentError) Unwrap() error {
	return e.Cause
}

// NewPermanent creates a new permanent error
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Cause: err}
}

// NewPermanentf creates a new permanent error with formatting
func NewPermanentf(format string, args ...interface{}) error {
	return &PermanentError{Cause: fmt.Errorf(format, args...)}
}

// TransientError marks an observability-subsystem failure (export, scrape).
// These are absorbed internally and never converted into request failures.
type TransientError struct {
	Cause error
}

func (e *TransientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transient error: %v", e.Cause)
	}
	return "transient error"
}

func (e *TransientError) Unwrap() error {
	return e.Cause
}

// NewTransientf creates a new transient error with formatting
func NewTransientf(format string, args ...interface{}) error {
	return &TransientError{Cause: fmt.Errorf(format, args...)}
}

// InvalidInputError marks a request validation failure. It is the only
// per-request error kind the service produces.
type InvalidInputError struct {
	Cause error
}

func (e *InvalidInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid input: %v", e.Cause)
	}
	return "invalid input"
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInvalidInputf creates a new invalid input error with formatting
func NewInvalidInputf(format string, args ...interface{}) error {
	return &InvalidInputError{Cause: fmt.Errorf(format, args...)}
}

// IsPermanent checks if an error is a fatal startup configuration error
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}

	var permanentErr *PermanentError
	return errors.As(err, &permanentErr)
}

// IsTransient checks if an error came from an observability subsystem
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var transientErr *TransientError
	return errors.As(err, &transientErr)
}

// IsInvalidInput checks if an error is a request validation failure
func IsInvalidInput(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrInvalidInput) {
		return true
	}

	var invalidErr *InvalidInputError
	return errors.As(err, &invalidErr)
}
