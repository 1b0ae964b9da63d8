package create_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellemadame/booking-service/internal/domain"
	catalogRepo "github.com/bellemadame/booking-service/internal/infra/storage/catalog"
	"github.com/bellemadame/booking-service/internal/integrations/smsgateway"
	"github.com/bellemadame/booking-service/internal/validation"
	"github.com/bellemadame/booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
	getErr   error
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	b.ID = 42
	b.CreatedAt = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	f.created = b
	return b, nil
}

func (f *fakeBookingRepo) GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) ([]*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.existing, nil
}

type fakeCatalogRepo struct {
	service    *domain.Service
	serviceErr error
	staff      *domain.Staff
	staffErr   error
}

func (f *fakeCatalogRepo) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return f.service, f.serviceErr
}

func (f *fakeCatalogRepo) GetStaff(ctx context.Context, id int64) (*domain.Staff, error) {
	return f.staff, f.staffErr
}

type fakeNotifier struct {
	sent chan smsgateway.Confirmation
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(chan smsgateway.Confirmation, 1)}
}

func (f *fakeNotifier) SendBookingConfirmation(ctx context.Context, conf smsgateway.Confirmation) error {
	f.sent <- conf
	return nil
}

// fakeTxManager runs the callback directly; serialization is the real
// manager's concern, not this package's.
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// capturingTxManager records the error the callback hands back, which is
// what the real manager inspects when deciding whether to retry.
type capturingTxManager struct {
	captured error
}

func (m *capturingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.captured = fn(ctx)
	return m.captured
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var (
	// 2026-09-02 is a Wednesday: 09:00-19:00
	wednesday = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	today     = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
)

type fixture struct {
	uc       *UseCase
	repo     *fakeBookingRepo
	notifier *fakeNotifier
}

func newFixture(existing []*domain.Booking) *fixture {
	repo := &fakeBookingRepo{existing: existing}
	notifier := newFakeNotifier()
	uc := NewUseCase(
		repo,
		&fakeCatalogRepo{
			service: &domain.Service{ID: 1, Name: "Full Head Colour", Price: 850, DurationMinutes: 90},
			staff:   &domain.Staff{ID: 2, Name: "Thandi"},
		},
		validation.NewPhoneValidator(),
		notifier,
		fakeTxManager{},
		domain.DefaultWeeklyHours(),
		fixedClock{now: today},
		nopLogger{},
	)
	return &fixture{uc: uc, repo: repo, notifier: notifier}
}

func validRequest() *Request {
	return &Request{
		ClientName: "Naledi M",
		Phone:      "071 123 4567",
		ServiceID:  1,
		StaffID:    2,
		Date:       wednesday,
		StartTime:  "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, "Full Head Colour", resp.ServiceName)
	assert.Equal(t, 850.0, resp.ServicePrice)
	assert.Equal(t, "Thandi", resp.StaffName)
	assert.Equal(t, 90, resp.DurationMinutes)

	// Duration and price came from the catalog, not the request
	require.NotNil(t, f.repo.created)
	assert.Equal(t, 90, f.repo.created.DurationMinutes)

	select {
	case conf := <-f.notifier.sent:
		assert.Equal(t, "Naledi M", conf.ClientName)
		assert.Equal(t, "Full Head Colour", conf.ServiceName)
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation SMS was never sent")
	}
}

func TestExecute_SlotTaken(t *testing.T) {
	f := newFixture([]*domain.Booking{
		{StartTime: "10:30", DurationMinutes: 60}, // 10:30-11:30 vs requested 10:00-11:30
	})

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, f.repo.created)
}

func TestExecute_TouchingBookingIsNotConflict(t *testing.T) {
	f := newFixture([]*domain.Booking{
		{StartTime: "11:30", DurationMinutes: 60}, // starts exactly when 10:00+90m ends
	})

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_OutOfHours(t *testing.T) {
	f := newFixture(nil)

	req := validRequest()
	req.StartTime = "18:00" // 18:00+90m runs past 19:00
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutOfHours)

	req = validRequest()
	req.StartTime = "08:30"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutOfHours)
}

func TestExecute_EndingAtCloseIsAllowed(t *testing.T) {
	f := newFixture(nil)

	req := validRequest()
	req.StartTime = "17:30" // ends exactly at 19:00
	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_Closed(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(
		repo,
		&fakeCatalogRepo{
			service: &domain.Service{ID: 1, DurationMinutes: 60},
			staff:   &domain.Staff{ID: 2},
		},
		validation.NewPhoneValidator(),
		newFakeNotifier(),
		fakeTxManager{},
		domain.NewWeeklyHours(map[time.Weekday]domain.DayHours{
			time.Monday: {Open: "09:00", Close: "19:00"},
		}),
		fixedClock{now: today},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestExecute_MissingFields(t *testing.T) {
	f := newFixture(nil)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"client name", func(r *Request) { r.ClientName = "  " }},
		{"phone", func(r *Request) { r.Phone = "" }},
		{"service id", func(r *Request) { r.ServiceID = 0 }},
		{"staff id", func(r *Request) { r.StaffID = 0 }},
		{"date", func(r *Request) { r.Date = time.Time{} }},
		{"start time", func(r *Request) { r.StartTime = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestExecute_NotesStored(t *testing.T) {
	f := newFixture(nil)

	req := validRequest()
	req.Notes = ptr.Ptr("allergic to ammonia dye")
	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, f.repo.created.Notes)
	assert.Equal(t, "allergic to ammonia dye", *f.repo.created.Notes)
}

func TestExecute_NotesTooLong(t *testing.T) {
	f := newFixture(nil)

	req := validRequest()
	req.Notes = ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1))
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_InvalidPhone(t *testing.T) {
	f := newFixture(nil)

	req := validRequest()
	req.Phone = "12345"
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture(nil)

	req := validRequest()
	req.Date = today.AddDate(0, 0, -1)
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SameDayIsNotPast(t *testing.T) {
	f := newFixture(nil)

	req := validRequest()
	req.Date = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC) // the clock's own date
	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_RepoErrorKeepsCauseForRetry(t *testing.T) {
	repo := &fakeBookingRepo{getErr: &pq.Error{Code: "40001"}}
	txm := &capturingTxManager{}
	uc := NewUseCase(
		repo,
		&fakeCatalogRepo{
			service: &domain.Service{ID: 1, Name: "Full Head Colour", Price: 850, DurationMinutes: 90},
			staff:   &domain.Staff{ID: 2, Name: "Thandi"},
		},
		validation.NewPhoneValidator(),
		newFakeNotifier(),
		txm,
		domain.DefaultWeeklyHours(),
		fixedClock{now: today},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)

	// The transaction manager matches serialization conflicts with
	// errors.As, so the pq cause must survive the wrapping.
	var pqErr *pq.Error
	require.True(t, errors.As(txm.captured, &pqErr))
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestExecute_CatalogMisses(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeCatalogRepo{serviceErr: catalogRepo.ErrServiceNotFound},
		validation.NewPhoneValidator(),
		newFakeNotifier(),
		fakeTxManager{},
		domain.DefaultWeeklyHours(),
		fixedClock{now: today},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)

	uc = NewUseCase(
		&fakeBookingRepo{},
		&fakeCatalogRepo{
			service:  &domain.Service{ID: 1, DurationMinutes: 60},
			staffErr: catalogRepo.ErrStaffNotFound,
		},
		validation.NewPhoneValidator(),
		newFakeNotifier(),
		fakeTxManager{},
		domain.DefaultWeeklyHours(),
		fixedClock{now: today},
		nopLogger{},
	)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
