package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort           = "8080"
	defaultDatabaseURL    = "emporio.db"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultJWTAccessTTL   = "24h"
	defaultWorkStartHour  = "8"
	defaultWorkEndHour    = "18"
	defaultLunchStartHour = "12"
	defaultLunchEndHour   = "13"
	defaultSlotIncrement  = "15m"
	defaultBuffer         = "15m"
	defaultCancelLead     = "12h"
)

// CalendarPolicy is the static business-hours configuration the scheduling
// engine runs against. Hours are naive local wall-clock hours.
type CalendarPolicy struct {
	WorkStartHour  int
	WorkEndHour    int
	LunchStartHour int
	LunchEndHour   int
	// Step between candidate slot starts, walked from each gap's left edge.
	SlotIncrement time.Duration
	// Dead time after an appointment before the same employee is free again.
	Buffer time.Duration
	// Minimum notice a customer must give to cancel.
	CancelLead time.Duration
}

// Workday returns the business-hours and lunch boundaries projected onto date.
func (p CalendarPolicy) Workday(date time.Time) (workStart, workEnd, lunchStart, lunchEnd time.Time) {
	at := func(hour int) time.Time {
		return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
	}
	return at(p.WorkStartHour), at(p.WorkEndHour), at(p.LunchStartHour), at(p.LunchEndHour)
}

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	Calendar    CalendarPolicy
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
	}

	var err error
	if cfg.JWTTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL); err != nil {
		return nil, err
	}

	if cfg.Calendar.WorkStartHour, err = parseIntEnv("WORKDAY_START_HOUR", defaultWorkStartHour); err != nil {
		return nil, err
	}
	if cfg.Calendar.WorkEndHour, err = parseIntEnv("WORKDAY_END_HOUR", defaultWorkEndHour); err != nil {
		return nil, err
	}
	if cfg.Calendar.LunchStartHour, err = parseIntEnv("LUNCH_START_HOUR", defaultLunchStartHour); err != nil {
		return nil, err
	}
	if cfg.Calendar.LunchEndHour, err = parseIntEnv("LUNCH_END_HOUR", defaultLunchEndHour); err != nil {
		return nil, err
	}
	if cfg.Calendar.SlotIncrement, err = parseDurationEnv("SLOT_INCREMENT", defaultSlotIncrement); err != nil {
		return nil, err
	}
	if cfg.Calendar.Buffer, err = parseDurationEnv("APPOINTMENT_BUFFER", defaultBuffer); err != nil {
		return nil, err
	}
	if cfg.Calendar.CancelLead, err = parseDurationEnv("CANCEL_LEAD", defaultCancelLead); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	c := cfg.Calendar
	if c.WorkStartHour < 0 || c.WorkEndHour > 24 || c.WorkStartHour >= c.WorkEndHour {
		return fmt.Errorf("workday hours %d-%d are not a valid range", c.WorkStartHour, c.WorkEndHour)
	}
	if c.LunchStartHour > c.LunchEndHour {
		return fmt.Errorf("lunch hours %d-%d are not a valid range", c.LunchStartHour, c.LunchEndHour)
	}
	if c.SlotIncrement <= 0 {
		return fmt.Errorf("SLOT_INCREMENT must be > 0")
	}
	if c.Buffer < 0 {
		return fmt.Errorf("APPOINTMENT_BUFFER must be >= 0")
	}
	if c.CancelLead < 0 {
		return fmt.Errorf("CANCEL_LEAD must be >= 0")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}

func parseIntEnv(key, def string) (int, error) {
	raw := getEnv(key, def)
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, raw, err)
	}
	return n, nil
}
