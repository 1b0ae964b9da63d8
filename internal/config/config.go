package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bellemadame/booking-service/internal/domain"
	"github.com/bellemadame/booking-service/pkg/types"
)

// Config is the full service configuration loaded from config.toml.
// Twilio credentials are deliberately absent: they come from the
// environment (see cmd/main.go), never from a checked-in file.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	SMS       SMSConfig       `toml:"sms"`
	Reminders RemindersConfig `toml:"reminders"`
	Salon     SalonConfig     `toml:"salon"`
	Hours     HoursConfig     `toml:"hours"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type SMSConfig struct {
	Enabled     bool   `toml:"enabled"`
	FromNumber  string `toml:"from_number"`
	CountryCode string `toml:"country_code"` // prefix for local numbers, e.g. "+27"
}

type RemindersConfig struct {
	Enabled    bool   `toml:"enabled"`
	CronSpec   string `toml:"cron_spec"`
	RunOnStart bool   `toml:"run_on_start"`
}

type SalonConfig struct {
	BusinessName string `toml:"business_name"`
	Currency     string `toml:"currency"`
}

// HoursConfig is the weekly opening-hours table. Days omitted from the
// file fall back to the default template rather than being closed; a day
// is closed only when marked so explicitly.
type HoursConfig struct {
	Monday    *DayHoursConfig `toml:"monday"`
	Tuesday   *DayHoursConfig `toml:"tuesday"`
	Wednesday *DayHoursConfig `toml:"wednesday"`
	Thursday  *DayHoursConfig `toml:"thursday"`
	Friday    *DayHoursConfig `toml:"friday"`
	Saturday  *DayHoursConfig `toml:"saturday"`
	Sunday    *DayHoursConfig `toml:"sunday"`
}

type DayHoursConfig struct {
	Open   string `toml:"open"`  // "09:00"
	Close  string `toml:"close"` // "19:00"
	Closed bool   `toml:"closed"`
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if _, err := cfg.WeeklyHours(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "booking-service"
	}
	if c.SMS.CountryCode == "" {
		c.SMS.CountryCode = "+27"
	}
	if c.Reminders.CronSpec == "" {
		c.Reminders.CronSpec = "0 18 * * *"
	}
	if c.Salon.BusinessName == "" {
		c.Salon.BusinessName = "Belle Madame Salon"
	}
	if c.Salon.Currency == "" {
		c.Salon.Currency = "R"
	}
}

// WeeklyHours converts the [hours] table into the domain template,
// starting from the default and overriding the days present in config.
func (c *Config) WeeklyHours() (domain.WeeklyHours, error) {
	table := map[time.Weekday]*DayHoursConfig{
		time.Monday:    c.Hours.Monday,
		time.Tuesday:   c.Hours.Tuesday,
		time.Wednesday: c.Hours.Wednesday,
		time.Thursday:  c.Hours.Thursday,
		time.Friday:    c.Hours.Friday,
		time.Saturday:  c.Hours.Saturday,
		time.Sunday:    c.Hours.Sunday,
	}

	defaults := domain.DefaultWeeklyHours()
	merged := make(map[time.Weekday]domain.DayHours, len(table))

	for day := time.Sunday; day <= time.Saturday; day++ {
		overrides := table[day]
		if overrides == nil {
			hours, open := defaults.HoursFor(anchorDate(day))
			if !open {
				hours = domain.DayHours{Closed: true}
			}
			merged[day] = hours
			continue
		}

		if overrides.Closed {
			merged[day] = domain.DayHours{Closed: true}
			continue
		}

		open, err := types.NewTimeStringFromString(overrides.Open)
		if err != nil {
			return domain.WeeklyHours{}, fmt.Errorf("config: hours for %s: invalid open time %q", day, overrides.Open)
		}
		closeTime, err := types.NewTimeStringFromString(overrides.Close)
		if err != nil {
			return domain.WeeklyHours{}, fmt.Errorf("config: hours for %s: invalid close time %q", day, overrides.Close)
		}
		if !open.IsBefore(closeTime) {
			return domain.WeeklyHours{}, fmt.Errorf("config: hours for %s: open %s is not before close %s", day, open, closeTime)
		}

		merged[day] = domain.DayHours{Open: open, Close: closeTime}
	}

	return domain.NewWeeklyHours(merged), nil
}

// anchorDate returns some date falling on the given weekday.
// 2024-09-01 was a Sunday.
func anchorDate(day time.Weekday) time.Time {
	base := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, int(day))
}
