package domain

// Service is a bookable salon service. Catalog records are read-only from
// this service's perspective; DurationMinutes is converted from the
// catalog's fractional hours when the row is scanned.
type Service struct {
	ID              int64
	Category        string
	Name            string
	Price           float64
	DurationMinutes int
}

// Staff is a staff member who performs services.
type Staff struct {
	ID   int64
	Name string
}
