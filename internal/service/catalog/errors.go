package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("catalog: internal error")
)
