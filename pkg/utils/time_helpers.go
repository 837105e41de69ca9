package utils

import (
	"time"

	"github.com/aarondl/null/v8"
)

const DateTimeLayout = "2006-01-02 15:04:05"

func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func FormatDateTime(t time.Time) string {
	return t.Local().Format(DateTimeLayout)
}

// ParseDate parses YYYY-MM-DD as a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, time.UTC)
}

// ParseNullDate returns an invalid null.Time for an empty string.
func ParseNullDate(s string) (null.Time, error) {
	if s == "" {
		return null.Time{}, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return null.Time{}, err
	}
	return null.TimeFrom(t), nil
}

func NullDateToPtr(t null.Time) *string {
	if !t.Valid {
		return nil
	}
	s := FormatDate(t.Time)
	return &s
}
