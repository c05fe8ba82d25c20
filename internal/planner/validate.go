package planner

import (
	"fmt"
	"strconv"
	"time"

	"github.com/username/clinic-scheduler/internal/schedule"
	"github.com/username/clinic-scheduler/pkg/dateutil"
)

func checkDay(year int, month time.Month, day int) error {
	if day < 1 || day > dateutil.DaysInMonth(year, month) {
		return fmt.Errorf("%w: %s day %d", schedule.ErrInvalidDay, dateutil.MonthKey(year, month), day)
	}
	return nil
}

func dayKey(day int) string {
	return strconv.Itoa(day)
}
