package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/bellemadame/booking-service/internal/domain"
	"github.com/bellemadame/booking-service/pkg/dbmetrics"
	"github.com/bellemadame/booking-service/pkg/psqlbuilder"
)

// Repository is the persistence side of the booking ledger.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking. If the context carries an active
// transaction (installed by the transaction manager), the insert runs
// inside it; the booking transaction always calls Create that way, right
// after re-checking the slot against the locked interval set.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"client_name",
			"phone",
			"service_id",
			"staff_id",
			"booking_date",
			"start_time",
			"duration_minutes",
			"service_name",
			"service_price",
			"staff_name",
			"notes",
		).
		Values(
			b.ClientName,
			b.Phone,
			b.ServiceID,
			b.StaffID,
			b.BookingDate,
			b.StartTime,
			b.DurationMinutes,
			b.ServiceName,
			b.ServicePrice,
			b.StaffName,
			b.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	return b, nil
}

// GetByID returns one booking by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.ClientName,
		&b.Phone,
		&b.ServiceID,
		&b.StaffID,
		&b.BookingDate,
		&b.StartTime,
		&b.DurationMinutes,
		&b.ServiceName,
		&b.ServicePrice,
		&b.StaffName,
		&b.Notes,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	return &b, nil
}

// GetByStaffAndDate returns a staff member's bookings for one date,
// ordered by start time. Inside a transaction the rows are locked with
// FOR UPDATE: concurrent booking transactions for the same staff and date
// serialize on this read, which is what makes the check-then-insert safe.
func (r *Repository) GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectBookings().
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByDate returns every booking for one date ordered by start time.
// Used by the reminder run; service and staff names are denormalized on
// the row, so no joins are needed.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// selectBookings lists the booking columns in scan order.
func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"client_name",
		"phone",
		"service_id",
		"staff_id",
		"booking_date",
		"start_time",
		"duration_minutes",
		"service_name",
		"service_price",
		"staff_name",
		"notes",
		"created_at",
	).From("bookings")
}

// scanBookings scans query results into a slice of bookings.
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.ClientName,
			&b.Phone,
			&b.ServiceID,
			&b.StaffID,
			&b.BookingDate,
			&b.StartTime,
			&b.DurationMinutes,
			&b.ServiceName,
			&b.ServicePrice,
			&b.StaffName,
			&b.Notes,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
