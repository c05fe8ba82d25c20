package calendar

import (
	"time"

	"github.com/username/clinic-scheduler/pkg/dateutil"
)

// GridCell is one cell of a Sunday-first month grid
type GridCell struct {
	Date    time.Time
	Day     int
	Weekday time.Weekday
	InMonth bool // false for padding days of the neighbouring months
	IsToday bool
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return dateutil.DaysInMonth(year, month)
}

// FirstWeekday returns the weekday of the 1st of the month
func FirstWeekday(year int, month time.Month) time.Weekday {
	return dateutil.CivilDate(year, month, 1).Weekday()
}

// LastWeekday returns the weekday of the last day of the month
func LastWeekday(year int, month time.Month) time.Weekday {
	return dateutil.CivilDate(year, month, DaysInMonth(year, month)).Weekday()
}

// WeeksCount returns how many Sunday-first week rows the month spans
func WeeksCount(year int, month time.Month) int {
	return (int(FirstWeekday(year, month)) + DaysInMonth(year, month) + 6) / 7
}

// PrevMonth returns the month before the given one
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth returns the month after the given one
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// MonthGrid lays the month out in full Sunday-first weeks. Leading and
// trailing cells are taken from the neighbouring months and have InMonth unset.
func MonthGrid(year int, month time.Month, today time.Time) []GridCell {
	lead := int(FirstWeekday(year, month))
	days := DaysInMonth(year, month)
	total := WeeksCount(year, month) * 7

	cells := make([]GridCell, 0, total)
	for i := 0; i < total; i++ {
		// day offsets relative to the 1st; time.Date normalizes out-of-range days
		date := dateutil.CivilDate(year, month, i-lead+1)
		cells = append(cells, GridCell{
			Date:    date,
			Day:     date.Day(),
			Weekday: date.Weekday(),
			InMonth: i >= lead && i < lead+days,
			IsToday: dateutil.IsSameDay(date, today),
		})
	}
	return cells
}
