package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/bellemadame/booking-service/internal/domain"
	catalogRepo "github.com/bellemadame/booking-service/internal/infra/storage/catalog"
	"github.com/bellemadame/booking-service/pkg/types"
)

// UseCase enumerates the free booking slots for a staff member and date.
//
// The result is advisory: a slot shown free here may be claimed before the
// client submits. The booking transaction re-checks inside its own
// serializable transaction, which is the actual safety gate; both checks
// share domain.Interval so they cannot diverge.
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	hours       domain.WeeklyHours
	logger      Logger
}

// NewUseCase creates the use case with the injected opening-hours template.
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	hours domain.WeeklyHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		hours:       hours,
		logger:      logger,
	}
}

// Execute runs the availability calculation.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: staff=%d, service=%d, date=%s",
		req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	staff, err := uc.catalogRepo.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			uc.logger.Warn("GetAvailableSlots: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	dayHours, open := uc.hours.HoursFor(req.Date)
	if !open {
		uc.logger.Info("GetAvailableSlots: salon closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			StaffID:         req.StaffID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			DurationMinutes: service.DurationMinutes,
			Closed:          true,
			Slots:           []types.TimeString{},
		}, nil
	}

	bookings, err := uc.bookingRepo.GetByStaffAndDate(ctx, req.StaffID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	slots, err := generateFreeSlots(dayHours, service.DurationMinutes, domain.Intervals(bookings))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d free slots for staff=%d (%s), service=%d, date=%s",
		len(slots), req.StaffID, staff.Name, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		StaffID:         req.StaffID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		DurationMinutes: service.DurationMinutes,
		Closed:          false,
		Slots:           slots,
	}, nil
}

// validateRequest validates the request fields.
func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
