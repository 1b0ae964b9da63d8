package catalog

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	eligibleStaffQuery = `SELECT s.id, s.name FROM staff s JOIN staff_services ss ON s.id = ss.staff_id WHERE ss.service_id = $1 ORDER BY s.name ASC`
	allStaffQuery      = `SELECT id, name FROM staff ORDER BY name ASC`
)

func TestListEligibleStaff_RestrictedService(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(eligibleStaffQuery)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(2), "Zanele"))

	repo := NewRepository(db)

	staff, err := repo.ListEligibleStaff(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, int64(2), staff[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEligibleStaff_NoAssociationsMeansEveryone(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(eligibleStaffQuery)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	mock.ExpectQuery(regexp.QuoteMeta(allStaffQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "Thandi").
			AddRow(int64(2), "Zanele").
			AddRow(int64(3), "Sipho"))

	repo := NewRepository(db)

	staff, err := repo.ListEligibleStaff(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, staff, 3, "a service with no association rows is unrestricted")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetService_ConvertsFractionalHours(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, category, name, price, duration_hours FROM services WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "name", "price", "duration_hours"}).
			AddRow(int64(1), "Hair", "Full Head Colour", 850.0, 1.5))

	repo := NewRepository(db)

	service, err := repo.GetService(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 90, service.DurationMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetService_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, category, name, price, duration_hours FROM services WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "name", "price", "duration_hours"}))

	repo := NewRepository(db)

	_, err = repo.GetService(context.Background(), 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
