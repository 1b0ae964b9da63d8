package get_available_slots

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrStaffNotFound is returned when the staff member does not exist
	ErrStaffNotFound = errors.New("get_available_slots: staff member not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
