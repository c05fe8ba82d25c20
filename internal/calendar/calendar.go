package calendar

import (
	"context"
	"errors"
	"time"

	"github.com/username/clinic-scheduler/internal/schedule"
)

// ErrYearNotCovered is returned when a source has no holiday data for a year
var ErrYearNotCovered = errors.New("no holiday data for year")

// HolidaySource supplies the public holidays that fall in a month
type HolidaySource interface {
	// Holidays returns the public holidays of the given month
	Holidays(ctx context.Context, year int, month time.Month) ([]schedule.PublicHoliday, error)
}
