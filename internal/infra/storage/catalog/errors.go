package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when a service id does not exist
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrStaffNotFound is returned when a staff id does not exist
	ErrStaffNotFound = errors.New("catalog.repository: staff member not found")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
