package create_booking

import "errors"

var (
	// ErrMissingField is returned when a required field is absent
	ErrMissingField = errors.New("create_booking: missing required field")

	// ErrInvalidPhone is returned when the phone number format is not accepted
	ErrInvalidPhone = errors.New("create_booking: invalid phone number")

	// ErrInvalidDate is returned when the booking date is in the past
	ErrInvalidDate = errors.New("create_booking: date is in the past")

	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrStaffNotFound is returned when the staff member does not exist
	ErrStaffNotFound = errors.New("create_booking: staff member not found")

	// ErrClosed is returned when the salon has no hours on the requested date
	ErrClosed = errors.New("create_booking: salon is closed on this date")

	// ErrOutOfHours is returned when the requested interval does not fit
	// inside the open hours
	ErrOutOfHours = errors.New("create_booking: requested time is outside opening hours")

	// ErrSlotTaken is returned when the requested interval overlaps an
	// existing booking
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("create_booking: internal error")
)
