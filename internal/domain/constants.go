package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SlotStepMinutes is the fixed granularity at which bookable start times
// are generated. Bookings may be any length the catalog allows, but they
// always start on a half-hour boundary.
const SlotStepMinutes = 30

// Business validation constants
const (
	MaxNotesLength      = 500
	MaxClientNameLength = 120
)

// MinutesPerHour converts the catalog's fractional-hour durations to whole
// minutes. Catalog durations are stored at 0.05h (3 minute) granularity, so
// the conversion is exact; everything downstream is integer math.
const MinutesPerHour = 60
