package dateutil

import (
	"fmt"
	"time"
)

const (
	// ISODate is the layout of calendar dates in schedules and holiday datasets
	ISODate = "2006-01-02"

	// Clock is the layout of work interval boundaries ("HH:MM")
	Clock = "15:04"
)

var weekdayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// CivilDate builds a local calendar date at midnight
func CivilDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekdayKey returns the lowercase three-letter key for a weekday ("sun".."sat")
func WeekdayKey(weekday time.Weekday) string {
	return weekdayKeys[int(weekday)%7]
}

// WeekOfMonth returns the 1-based week row of the date in its month,
// counting rows that start on Sunday: ceil((day + weekday of day 1) / 7)
func WeekOfMonth(date time.Time) int {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	return (date.Day() + offset + 6) / 7
}

// WeeksBetween returns floor((to - from) / 7 days) using calendar dates only,
// so DST shifts and clock times never move a date into another week
func WeeksBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	days := int(b.Sub(a).Hours() / 24)
	weeks := days / 7
	if days%7 != 0 && days < 0 {
		weeks--
	}
	return weeks
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(ISODate)
}

// MonthKey returns the "YYYY-MM" key used for stored month schedules
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%d-%02d", year, int(month))
}

// ParseMonthKey parses a "YYYY-MM" key
func ParseMonthKey(key string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t.Year(), t.Month(), nil
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		ISODate,
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}

// ParseClock parses an "HH:MM" time of day and returns minutes since midnight
func ParseClock(s string) (int, error) {
	t, err := time.Parse(Clock, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
