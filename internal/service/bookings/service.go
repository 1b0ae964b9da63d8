package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bellemadame/booking-service/internal/domain"
	bookingRepo "github.com/bellemadame/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/bellemadame/booking-service/internal/infra/storage/catalog"
	"github.com/bellemadame/booking-service/pkg/types"
)

// SlotCheck asks whether one specific start time is currently bookable.
type SlotCheck struct {
	StaffID   int64
	ServiceID int64
	Date      time.Time
	StartTime types.TimeString
}

// Slot check outcome reasons.
const (
	ReasonClosed     = "closed"
	ReasonOutOfHours = "out_of_hours"
	ReasonTaken      = "taken"
)

// SlotStatus is the advisory answer to a slot check. Available=true means
// the slot was free at the moment of the query; only the booking
// transaction can actually claim it.
type SlotStatus struct {
	Available bool
	Reason    string
}

// Service exposes booking reads and the advisory slot check. It never
// writes; every mutation goes through the booking transaction.
type Service struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	hours       domain.WeeklyHours
	logger      Logger
}

// NewService creates the booking read service.
func NewService(bookingRepository BookingRepository, catalogRepository CatalogRepository, hours domain.WeeklyHours, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepository,
		catalogRepo: catalogRepository,
		hours:       hours,
		logger:      logger,
	}
}

// GetByID returns one committed booking.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	return b, nil
}

// CheckSlot answers whether the requested start time is free right now.
// It runs the same opening-hours and overlap checks as the booking
// transaction, just without locks, so its answer can go stale.
func (s *Service) CheckSlot(ctx context.Context, check SlotCheck) (*SlotStatus, error) {
	if check.StaffID <= 0 || check.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: staffId and serviceId must be positive", ErrInvalidInput)
	}
	if check.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := check.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: startTime %q is not a valid HH:MM time", ErrInvalidInput, check.StartTime)
	}

	service, err := s.catalogRepo.GetService(ctx, check.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("CheckSlot: failed to get service id=%d: %v", check.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if _, err := s.catalogRepo.GetStaff(ctx, check.StaffID); err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("CheckSlot: failed to get staff id=%d: %v", check.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	requested, err := domain.NewInterval(check.StartTime, service.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime %q is not a valid HH:MM time", ErrInvalidInput, check.StartTime)
	}

	dayHours, open := s.hours.HoursFor(check.Date)
	if !open {
		return &SlotStatus{Available: false, Reason: ReasonClosed}, nil
	}

	fits, err := dayHours.Contains(requested)
	if err != nil {
		s.logger.Error("CheckSlot: invalid opening hours configuration: %v", err)
		return nil, fmt.Errorf("%w: invalid opening hours: %v", ErrInternal, err)
	}
	if !fits {
		return &SlotStatus{Available: false, Reason: ReasonOutOfHours}, nil
	}

	existing, err := s.bookingRepo.GetByStaffAndDate(ctx, check.StaffID, check.Date)
	if err != nil {
		s.logger.Error("CheckSlot: failed to get bookings for staff=%d: %v", check.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if !domain.IsFree(requested, domain.Intervals(existing)) {
		return &SlotStatus{Available: false, Reason: ReasonTaken}, nil
	}

	return &SlotStatus{Available: true}, nil
}
