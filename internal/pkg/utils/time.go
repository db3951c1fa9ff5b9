package utils

import (
	"hospital-booking-service/internal/pkg/constvars"
	"time"
)

// IsBeforeToday reports whether date (YYYY-MM-DD) falls on a calendar day
// before now, both read in now's location.
func IsBeforeToday(date string, now time.Time) (bool, error) {
	day, err := time.ParseInLocation(constvars.DateOnlyLayout, date, now.Location())
	if err != nil {
		return false, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.Before(today), nil
}

const defaultRequestTimeout = 10 * time.Second

// RequestTimeout converts the configured seconds, falling back to ten
// seconds when unset.
func RequestTimeout(seconds int) time.Duration {
	if seconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(seconds) * time.Second
}
