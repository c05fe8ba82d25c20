package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/username/clinic-scheduler/pkg/dateutil"
)

// monthArg parses an optional "YYYY-MM" argument, defaulting to the current month
func monthArg(args []string, idx int) (int, time.Month, error) {
	if len(args) <= idx {
		today := dateutil.Today()
		return today.Year(), today.Month(), nil
	}
	return dateutil.ParseMonthKey(args[idx])
}

func dayArg(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return day, nil
}

func weekdayArg(s string) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if s == dateutil.WeekdayKey(wd) || s == strconv.Itoa(int(wd)) {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q (use sun..sat or 0..6)", s)
}
