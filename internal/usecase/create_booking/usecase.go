package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bellemadame/booking-service/internal/domain"
	catalogRepo "github.com/bellemadame/booking-service/internal/infra/storage/catalog"
	"github.com/bellemadame/booking-service/internal/integrations/smsgateway"
)

// confirmationTimeout bounds the post-commit SMS send.
const confirmationTimeout = 30 * time.Second

// UseCase commits a booking. The no-double-booking guarantee lives here:
// the requested interval is checked against the staff member's existing
// bookings inside a serializable transaction, with the day's rows locked,
// and the insert happens in the same transaction. Whatever the handler or
// the availability listing showed earlier does not matter; this is the
// only check that counts.
type UseCase struct {
	bookingRepo      BookingRepository
	catalogRepo      CatalogRepository
	contactValidator ContactValidator
	notifier         Notifier
	txManager        TransactionManager
	hours            domain.WeeklyHours
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case with all dependencies injected.
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	contactValidator ContactValidator,
	notifier Notifier,
	txManager TransactionManager,
	hours domain.WeeklyHours,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		catalogRepo:      catalogRepo,
		contactValidator: contactValidator,
		notifier:         notifier,
		txManager:        txManager,
		hours:            hours,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Execute validates the request, resolves catalog data, checks opening
// hours, then commits the booking transactionally. The confirmation SMS is
// sent after commit, outside the transaction, and never fails the booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: staff=%d, service=%d, date=%s, start=%s",
		req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Structural validation
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve catalog references
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	staff, err := uc.catalogRepo.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateBooking: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateBooking: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 3. Opening hours
	requested, err := domain.NewInterval(req.StartTime, service.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime %q is not a valid HH:MM time", ErrInvalidInput, req.StartTime)
	}

	dayHours, open := uc.hours.HoursFor(req.Date)
	if !open {
		uc.logger.Warn("CreateBooking: salon closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrClosed
	}

	fits, err := dayHours.Contains(requested)
	if err != nil {
		uc.logger.Error("CreateBooking: invalid opening hours configuration: %v", err)
		return nil, fmt.Errorf("%w: invalid opening hours: %v", ErrInternal, err)
	}
	if !fits {
		uc.logger.Warn("CreateBooking: interval %s+%dm outside hours on %s",
			req.StartTime, service.DurationMinutes, req.Date.Format(domain.DateFormat))
		return nil, ErrOutOfHours
	}

	// 4. Transactional check-then-insert
	booking := &domain.Booking{
		ClientName:      req.ClientName,
		Phone:           req.Phone,
		ServiceID:       req.ServiceID,
		StaffID:         req.StaffID,
		BookingDate:     req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: service.DurationMinutes,
		ServiceName:     service.Name,
		ServicePrice:    service.Price,
		StaffName:       staff.Name,
		Notes:           req.Notes,
	}

	// Errors inside the transaction keep their cause chain intact with %w:
	// the transaction manager inspects it to retry serialization conflicts.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByStaffAndDate(txCtx, req.StaffID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		if !domain.IsFree(requested, domain.Intervals(existing)) {
			return ErrSlotTaken
		}

		if _, err := uc.bookingRepo.Create(txCtx, booking); err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot taken: staff=%d, date=%s, start=%s",
				req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: committed booking id=%d for %s with %s on %s at %s",
		booking.ID, req.ClientName, staff.Name, req.Date.Format(domain.DateFormat), req.StartTime)

	// 5. Post-commit notification, detached from the request lifecycle
	uc.sendConfirmation(booking)

	return &Response{
		BookingID:       booking.ID,
		ClientName:      booking.ClientName,
		ServiceName:     booking.ServiceName,
		ServicePrice:    booking.ServicePrice,
		StaffName:       booking.StaffName,
		Date:            booking.BookingDate,
		StartTime:       booking.StartTime,
		DurationMinutes: booking.DurationMinutes,
		CreatedAt:       booking.CreatedAt,
	}, nil
}

// sendConfirmation fires the confirmation SMS in the background. The
// booking is already committed; a failed send is logged and dropped.
func (uc *UseCase) sendConfirmation(b *domain.Booking) {
	conf := smsgateway.Confirmation{
		Phone:       b.Phone,
		ClientName:  b.ClientName,
		ServiceName: b.ServiceName,
		Date:        b.BookingDate,
		StartTime:   b.StartTime,
		StaffName:   b.StaffName,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), confirmationTimeout)
		defer cancel()

		if err := uc.notifier.SendBookingConfirmation(ctx, conf); err != nil {
			uc.logger.Error("CreateBooking: confirmation SMS failed for booking id=%d: %v", b.ID, err)
		}
	}()
}
