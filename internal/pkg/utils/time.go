package utils

import (
	"medibook-service/internal/pkg/constvars"
	"time"
)

func ParseDate(value string) (time.Time, error) {
	return time.Parse(constvars.DateLayout, value)
}

func ParseClockTime(value string) (time.Time, error) {
	return time.Parse(constvars.TimeLayout, value)
}

// IsPastDate reports whether date (YYYY-MM-DD) falls before now's calendar
// day. A parse failure counts as past; the format is validated upstream.
func IsPastDate(date string, now time.Time) bool {
	d, err := ParseDate(date)
	if err != nil {
		return true
	}
	return d.Before(startOfDay(now))
}

// IsBeyondSchedulingHorizon reports whether date lies more than
// constvars.SchedulingHorizonMonths after now's calendar day.
func IsBeyondSchedulingHorizon(date string, now time.Time) bool {
	d, err := ParseDate(date)
	if err != nil {
		return true
	}
	return d.After(startOfDay(now).AddDate(0, constvars.SchedulingHorizonMonths, 0))
}

// startOfDay maps now to its calendar day at UTC midnight so it compares
// cleanly with ParseDate output.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsValidTimeRange reports start < end for two HH:MM values. Both must
// already be format-validated; a parse failure counts as invalid.
func IsValidTimeRange(startTime, endTime string) bool {
	start, err := ParseClockTime(startTime)
	if err != nil {
		return false
	}
	end, err := ParseClockTime(endTime)
	if err != nil {
		return false
	}
	return start.Before(end)
}
