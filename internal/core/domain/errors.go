package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a required field is missing or malformed.
	// Validation happens before any storage write is attempted.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidInput indicates a required argument (typically an ID) is missing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidFormat indicates malformed vCard input.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrStorage indicates an underlying key-value read or write failed.
	ErrStorage = errors.New("storage failure")

	// ErrBackend indicates the generative text backend returned an error.
	// Follow-up generation treats this as a normal path and falls back to
	// canned templates; it never surfaces to the end user.
	ErrBackend = errors.New("backend failure")
)
