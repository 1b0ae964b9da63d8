package smsgateway

import (
	"fmt"
	"strings"
)

const (
	confirmationDateFormat = "Monday, 02 January 2006"
	reminderDateFormat     = "Monday, 02 January"
)

// confirmationMessage renders the booking confirmation text.
func confirmationMessage(businessName string, c Confirmation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s! Your booking at %s is confirmed.\n\n", c.ClientName, businessName)
	fmt.Fprintf(&b, "Service: %s\n", c.ServiceName)
	fmt.Fprintf(&b, "Date: %s\n", c.Date.Format(confirmationDateFormat))
	fmt.Fprintf(&b, "Time: %s", c.StartTime)

	if c.StaffName != "" {
		fmt.Fprintf(&b, "\nStaff: %s", c.StaffName)
	}

	b.WriteString("\n\nReply CANCEL to cancel your appointment.")
	return b.String()
}

// reminderMessage renders the next-day reminder text.
func reminderMessage(businessName string, r Reminder) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Reminder: Hi %s, you have an appointment at %s tomorrow!\n\n", r.ClientName, businessName)
	fmt.Fprintf(&b, "Service: %s\n", r.ServiceName)
	fmt.Fprintf(&b, "Time: %s\n\n", r.StartTime)
	b.WriteString("We look forward to seeing you!")
	return b.String()
}

// formatNumber normalizes a phone number to E.164 for the provider.
// Local numbers beginning with 0 get the configured country prefix.
func formatNumber(phone, countryCode string) (string, error) {
	var cleaned strings.Builder
	for _, c := range phone {
		if c >= '0' && c <= '9' || c == '+' {
			cleaned.WriteRune(c)
		}
	}

	s := cleaned.String()
	if s == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidRecipient, phone)
	}

	switch {
	case strings.HasPrefix(s, "+"):
		return s, nil
	case strings.HasPrefix(s, "0"):
		return countryCode + s[1:], nil
	default:
		return "+" + s, nil
	}
}
