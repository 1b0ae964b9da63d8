package smsgateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0711234567", "+27711234567"},
		{"071 123 4567", "+27711234567"},
		{"+27711234567", "+27711234567"},
		{"27711234567", "+27711234567"},
	}

	for _, tt := range tests {
		got, err := formatNumber(tt.in, "+27")
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}

	_, err := formatNumber("", "+27")
	assert.ErrorIs(t, err, ErrInvalidRecipient)

	_, err = formatNumber("---", "+27")
	assert.ErrorIs(t, err, ErrInvalidRecipient)
}

func TestConfirmationMessage(t *testing.T) {
	msg := confirmationMessage("Belle Madame Salon", Confirmation{
		ClientName:  "Naledi",
		ServiceName: "Full Head Colour",
		Date:        time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		StaffName:   "Thandi",
	})

	assert.Contains(t, msg, "Hi Naledi!")
	assert.Contains(t, msg, "Belle Madame Salon")
	assert.Contains(t, msg, "Service: Full Head Colour")
	assert.Contains(t, msg, "Wednesday, 02 September 2026")
	assert.Contains(t, msg, "Time: 10:00")
	assert.Contains(t, msg, "Staff: Thandi")
	assert.Contains(t, msg, "Reply CANCEL")
}

func TestConfirmationMessageWithoutStaff(t *testing.T) {
	msg := confirmationMessage("Belle Madame Salon", Confirmation{
		ClientName:  "Naledi",
		ServiceName: "Manicure",
		Date:        time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
	})

	assert.NotContains(t, msg, "Staff:")
}

func TestReminderMessage(t *testing.T) {
	msg := reminderMessage("Belle Madame Salon", Reminder{
		ClientName:  "Sipho",
		ServiceName: "Beard Trim",
		Date:        time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		StartTime:   "14:30",
	})

	assert.Contains(t, msg, "Hi Sipho")
	assert.Contains(t, msg, "tomorrow")
	assert.Contains(t, msg, "Service: Beard Trim")
	assert.Contains(t, msg, "Time: 14:30")
}
