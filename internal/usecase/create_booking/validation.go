package create_booking

import (
	"fmt"
	"strings"

	"github.com/bellemadame/booking-service/internal/domain"
	"github.com/bellemadame/booking-service/internal/validation"
)

// validateRequest checks the structural shape of the submission. Catalog
// existence, opening hours and slot conflicts are checked later, in order,
// so the client always gets the most specific error first.
func (uc *UseCase) validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName", ErrMissingField)
	}

	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone", ErrMissingField)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId", ErrMissingField)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffId", ErrMissingField)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date", ErrMissingField)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime", ErrMissingField)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime %q is not a valid HH:MM time", ErrInvalidInput, req.StartTime)
	}

	if !uc.contactValidator.IsValid(req.Phone) {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, req.Phone)
	}

	if !validation.IsNotPast(req.Date, uc.timeProvider.Now()) {
		return fmt.Errorf("%w: %s", ErrInvalidDate, req.Date.Format(domain.DateFormat))
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
