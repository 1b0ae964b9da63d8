// Package validation holds the input validators the booking transaction
// consumes through interfaces. Format rules are policy, not core logic:
// the phone pattern here is South African because that is where the salon
// operates, and swapping it touches nothing else.
package validation

import (
	"regexp"
	"strings"
)

// saPhonePattern accepts local and international South African numbers:
// 0711234567, +27711234567, 27711234567.
var saPhonePattern = regexp.MustCompile(`^(?:\+?27|0)?[0-9]{9,10}$`)

// PhoneValidator validates client contact numbers.
type PhoneValidator struct {
	pattern *regexp.Regexp
}

// NewPhoneValidator creates the default South African phone validator.
func NewPhoneValidator() *PhoneValidator {
	return &PhoneValidator{pattern: saPhonePattern}
}

// IsValid reports whether phone is an acceptable contact number.
// Whitespace and dashes are ignored.
func (v *PhoneValidator) IsValid(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	if cleaned == "" {
		return false
	}
	return v.pattern.MatchString(cleaned)
}
