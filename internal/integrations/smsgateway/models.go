package smsgateway

import (
	"time"

	"github.com/bellemadame/booking-service/pkg/types"
)

// Confirmation carries everything the confirmation SMS template needs.
type Confirmation struct {
	Phone       string
	ClientName  string
	ServiceName string
	Date        time.Time
	StartTime   types.TimeString
	StaffName   string
}

// Reminder carries everything the next-day reminder SMS template needs.
type Reminder struct {
	Phone       string
	ClientName  string
	ServiceName string
	Date        time.Time
	StartTime   types.TimeString
}
