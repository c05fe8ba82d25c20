package calendar

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/username/clinic-scheduler/internal/schedule"
)

// CompositeHolidays asks the primary source first and falls back to the
// secondary one when the primary fails
type CompositeHolidays struct {
	primary  HolidaySource
	fallback HolidaySource
	logger   *zap.Logger
}

// NewCompositeHolidays creates a new CompositeHolidays
func NewCompositeHolidays(primary, fallback HolidaySource, logger *zap.Logger) *CompositeHolidays {
	return &CompositeHolidays{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Holidays returns the holidays of a month
func (ch *CompositeHolidays) Holidays(ctx context.Context, year int, month time.Month) ([]schedule.PublicHoliday, error) {
	holidays, err := ch.primary.Holidays(ctx, year, month)
	if err == nil {
		return holidays, nil
	}

	ch.logger.Warn("Primary holiday source failed, falling back",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Error(err))

	return ch.fallback.Holidays(ctx, year, month)
}
