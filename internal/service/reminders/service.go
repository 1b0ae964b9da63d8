package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/bellemadame/booking-service/internal/domain"
	"github.com/bellemadame/booking-service/internal/integrations/smsgateway"
)

// Report summarizes one reminder run.
type Report struct {
	Date   time.Time
	Total  int
	Sent   int
	Failed int
}

// Service sends next-day reminders for committed bookings. It is driven
// by the cron schedule in main; each run covers tomorrow's bookings and a
// failed send only affects that one booking.
type Service struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the reminder service.
func NewService(bookingRepository BookingRepository, notifier Notifier, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepository,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Run sends a reminder for every booking scheduled tomorrow.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	// Booking dates are stored as UTC midnight; the lookup key must be
	// built in UTC too, whatever zone the server clock runs in.
	now := s.timeProvider.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	bookings, err := s.bookingRepo.GetByDate(ctx, tomorrow)
	if err != nil {
		s.logger.Error("Reminders: failed to get bookings for %s: %v", tomorrow.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("reminders: failed to get bookings: %w", err)
	}

	report := &Report{Date: tomorrow, Total: len(bookings)}

	for _, b := range bookings {
		rem := smsgateway.Reminder{
			Phone:       b.Phone,
			ClientName:  b.ClientName,
			ServiceName: b.ServiceName,
			Date:        b.BookingDate,
			StartTime:   b.StartTime,
		}

		if err := s.notifier.SendBookingReminder(ctx, rem); err != nil {
			s.logger.Error("Reminders: booking id=%d: send failed: %v", b.ID, err)
			report.Failed++
			continue
		}
		report.Sent++
	}

	s.logger.Info("Reminders: run for %s complete: total=%d sent=%d failed=%d",
		tomorrow.Format(domain.DateFormat), report.Total, report.Sent, report.Failed)

	return report, nil
}
