package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "booking"
password = "booking"
dbname = "booking"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "+27", cfg.SMS.CountryCode)
	assert.Equal(t, "0 18 * * *", cfg.Reminders.CronSpec)
	assert.Equal(t, "Belle Madame Salon", cfg.Salon.BusinessName)
	assert.Equal(t, "R", cfg.Salon.Currency)
}

func TestWeeklyHoursMerge(t *testing.T) {
	path := writeConfig(t, `
[hours.sunday]
closed = true

[hours.monday]
open = "10:00"
close = "16:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	hours, err := cfg.WeeklyHours()
	require.NoError(t, err)

	// Sunday closed by override
	sunday := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	_, open := hours.HoursFor(sunday)
	assert.False(t, open)

	// Monday overridden
	monday := sunday.AddDate(0, 0, 1)
	day, open := hours.HoursFor(monday)
	require.True(t, open)
	assert.Equal(t, "10:00", day.Open.String())
	assert.Equal(t, "16:00", day.Close.String())

	// Friday falls back to the default late close
	friday := sunday.AddDate(0, 0, 5)
	day, open = hours.HoursFor(friday)
	require.True(t, open)
	assert.Equal(t, "09:00", day.Open.String())
	assert.Equal(t, "20:00", day.Close.String())
}

func TestWeeklyHoursRejectsInvertedRange(t *testing.T) {
	path := writeConfig(t, `
[hours.monday]
open = "18:00"
close = "09:00"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWeeklyHoursRejectsBadTime(t *testing.T) {
	path := writeConfig(t, `
[hours.monday]
open = "9am"
close = "17:00"
`)

	_, err := Load(path)
	assert.Error(t, err)
}
