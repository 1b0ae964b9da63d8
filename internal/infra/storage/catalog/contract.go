package catalog

import "github.com/bellemadame/booking-service/pkg/dbmetrics"

// Reuse the dbmetrics executor interfaces for database access
type DBExecutor = dbmetrics.DBExecutor
