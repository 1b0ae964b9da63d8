package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/Masterminds/squirrel"

	"github.com/bellemadame/booking-service/internal/domain"
	"github.com/bellemadame/booking-service/pkg/dbmetrics"
	"github.com/bellemadame/booking-service/pkg/psqlbuilder"
)

// Repository provides read-only access to the service and staff catalog.
// The catalog is owned by the admin tooling; this service never writes it.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a catalog repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListServices returns the full catalog ordered by category and name.
func (r *Repository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"category",
		"name",
		"price",
		"duration_hours",
	).
		From("services").
		OrderBy("category ASC", "name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetService returns one service by id.
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"category",
		"name",
		"price",
		"duration_hours",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	var durationHours float64

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.Category,
		&service.Name,
		&service.Price,
		&durationHours,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	service.DurationMinutes = durationToMinutes(durationHours)
	return &service, nil
}

// GetStaff returns one staff member by id.
func (r *Repository) GetStaff(ctx context.Context, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStaff - build select query: %v", ErrBuildQuery, err)
	}

	var staff domain.Staff
	err = executor.QueryRowContext(ctx, query, args...).Scan(&staff.ID, &staff.Name)

	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaff - scan staff: %v", ErrScanRow, err)
	}

	return &staff, nil
}

// ListStaff returns all staff members ordered by name.
func (r *Repository) ListStaff(ctx context.Context) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("staff").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanStaffList(rows)
}

// ListEligibleStaff returns the staff members associated with a service
// through staff_services. A service with no association rows is
// unrestricted: every staff member is eligible, so the full list is
// returned rather than an empty one.
func (r *Repository) ListEligibleStaff(ctx context.Context, serviceID int64) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("s.id", "s.name").
		From("staff s").
		Join("staff_services ss ON s.id = ss.staff_id").
		Where(squirrel.Eq{"ss.service_id": serviceID}).
		OrderBy("s.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListEligibleStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEligibleStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staff, err := scanStaffList(rows)
	if err != nil {
		return nil, err
	}

	if len(staff) == 0 {
		return r.ListStaff(ctx)
	}
	return staff, nil
}

// scanService scans one catalog row, converting fractional hours to minutes.
func scanService(rows *sql.Rows) (*domain.Service, error) {
	var service domain.Service
	var durationHours float64

	err := rows.Scan(
		&service.ID,
		&service.Category,
		&service.Name,
		&service.Price,
		&durationHours,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanService - scan row: %v", ErrScanRow, err)
	}

	service.DurationMinutes = durationToMinutes(durationHours)
	return &service, nil
}

func scanStaffList(rows *sql.Rows) ([]*domain.Staff, error) {
	staff := make([]*domain.Staff, 0)

	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("%w: scanStaffList - scan row: %v", ErrScanRow, err)
		}
		staff = append(staff, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanStaffList - rows error: %v", ErrScanRow, err)
	}

	return staff, nil
}

// durationToMinutes converts the catalog's fractional hours to whole
// minutes. The catalog stores durations at 0.05h granularity (multiples of
// 3 minutes), so rounding here is exact; after this point no float math
// touches a booking interval.
func durationToMinutes(hours float64) int {
	return int(math.Round(hours * domain.MinutesPerHour))
}
