package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity with the same key already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown backend or option value.
	ErrUnsupportedType = errors.New("unsupported type")

	// Catalog Errors.

	// ErrUnknownCategory indicates a category outside the catalog's closed set.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrServiceUnavailable indicates the service exists but cannot be applied for yet.
	// The catalog shows these as "Coming soon".
	ErrServiceUnavailable = errors.New("service not available yet")

	// Application Errors.

	// ErrSessionNotFound indicates the application session expired or never existed.
	ErrSessionNotFound = errors.New("application session not found")

	// ErrUnknownField indicates a form field name outside the application form.
	ErrUnknownField = errors.New("unknown form field")

	// ErrInvalidStep indicates a step number outside the wizard's range.
	ErrInvalidStep = errors.New("invalid wizard step")

	// ErrAlreadySubmitted indicates the application can no longer be edited.
	ErrAlreadySubmitted = errors.New("application already submitted")
)
