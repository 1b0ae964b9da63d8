package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPhoneValidator(t *testing.T) {
	v := NewPhoneValidator()

	valid := []string{
		"0711234567",
		"071 123 4567",
		"071-123-4567",
		"+27711234567",
		"27711234567",
		"711234567",
	}
	for _, phone := range valid {
		assert.True(t, v.IsValid(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"   ",
		"12345",
		"071123456789012",
		"call me maybe",
		"+44 20 7946 0958 ext 12345",
	}
	for _, phone := range invalid {
		assert.False(t, v.IsValid(phone), "expected %q to be invalid", phone)
	}
}

func TestIsNotPast(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 30, 0, 0, time.UTC)

	assert.True(t, IsNotPast(now, now), "same day counts as not past regardless of clock time")
	assert.True(t, IsNotPast(now.AddDate(0, 0, 1), now))
	assert.False(t, IsNotPast(now.AddDate(0, 0, -1), now))
}
