package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("bookings: service not found")

	// ErrStaffNotFound is returned when the staff member does not exist
	ErrStaffNotFound = errors.New("bookings: staff member not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("bookings: internal error")
)
