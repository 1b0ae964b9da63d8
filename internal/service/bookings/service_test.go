package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellemadame/booking-service/internal/domain"
	bookingRepo "github.com/bellemadame/booking-service/internal/infra/storage/booking"
	"github.com/bellemadame/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	booking  *domain.Booking
	getErr   error
	existing []*domain.Booking
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeCatalogRepo struct {
	service *domain.Service
	staff   *domain.Staff
}

func (f *fakeCatalogRepo) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return f.service, nil
}

func (f *fakeCatalogRepo) GetStaff(ctx context.Context, id int64) (*domain.Staff, error) {
	return f.staff, nil
}

// 2026-09-02 is a Wednesday: 09:00-19:00
var wednesday = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

func newService(existing []*domain.Booking) *Service {
	return NewService(
		&fakeBookingRepo{existing: existing},
		&fakeCatalogRepo{
			service: &domain.Service{ID: 1, DurationMinutes: 60},
			staff:   &domain.Staff{ID: 2},
		},
		domain.DefaultWeeklyHours(),
		nopLogger{},
	)
}

func TestGetByID(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{booking: &domain.Booking{ID: 7, ClientName: "Naledi M"}},
		&fakeCatalogRepo{},
		domain.DefaultWeeklyHours(),
		nopLogger{},
	)

	b, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Naledi M", b.ClientName)

	_, err = svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound},
		&fakeCatalogRepo{},
		domain.DefaultWeeklyHours(),
		nopLogger{},
	)

	_, err := svc.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCheckSlot(t *testing.T) {
	tests := []struct {
		name       string
		existing   []*domain.Booking
		start      string
		wantAvail  bool
		wantReason string
	}{
		{"free slot", nil, "10:00", true, ""},
		{"taken", []*domain.Booking{{StartTime: "10:30", DurationMinutes: 60}}, "10:00", false, ReasonTaken},
		{"touching is free", []*domain.Booking{{StartTime: "11:00", DurationMinutes: 60}}, "10:00", true, ""},
		{"out of hours", nil, "18:30", false, ReasonOutOfHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(tt.existing)

			status, err := svc.CheckSlot(context.Background(), SlotCheck{
				StaffID:   2,
				ServiceID: 1,
				Date:      wednesday,
				StartTime: types.TimeString(tt.start),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvail, status.Available)
			assert.Equal(t, tt.wantReason, status.Reason)
		})
	}
}

func TestCheckSlot_ClosedDay(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{},
		&fakeCatalogRepo{
			service: &domain.Service{ID: 1, DurationMinutes: 60},
			staff:   &domain.Staff{ID: 2},
		},
		domain.NewWeeklyHours(map[time.Weekday]domain.DayHours{
			time.Monday: {Open: "09:00", Close: "19:00"},
		}),
		nopLogger{},
	)

	status, err := svc.CheckSlot(context.Background(), SlotCheck{
		StaffID: 2, ServiceID: 1, Date: wednesday, StartTime: "10:00",
	})
	require.NoError(t, err)
	assert.False(t, status.Available)
	assert.Equal(t, ReasonClosed, status.Reason)
}
