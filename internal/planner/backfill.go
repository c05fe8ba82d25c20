package planner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/username/clinic-scheduler/pkg/dateutil"
)

// RangeResult summarizes a multi-month generation
type RangeResult struct {
	ProcessedMonths int
	Months          []MonthResult
	Duration        time.Duration
}

// MonthResult is the outcome for a single month of a range
type MonthResult struct {
	Key      string // "YYYY-MM"
	Success  bool
	Holidays int
	Error    string
}

// GenerateRange generates every month from the first through the last one,
// both inclusive. A failing month is recorded and the remaining months are
// still processed; the returned error only reports an invalid range.
func (m *Manager) GenerateRange(ctx context.Context, fromYear int, fromMonth time.Month, toYear int, toMonth time.Month) (*RangeResult, error) {
	from := dateutil.MonthKey(fromYear, fromMonth)
	to := dateutil.MonthKey(toYear, toMonth)
	if from > to {
		return nil, fmt.Errorf("invalid month range %s..%s", from, to)
	}

	m.logger.Info("Starting range generation",
		zap.String("from", from),
		zap.String("to", to))

	started := time.Now()
	result := &RangeResult{Months: []MonthResult{}}

	year, month := fromYear, fromMonth
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		key := dateutil.MonthKey(year, month)
		mr := MonthResult{Key: key}

		ms, err := m.GenerateMonth(ctx, year, month)
		if err != nil {
			m.logger.Error("Month generation failed",
				zap.String("month", key),
				zap.Error(err))
			mr.Error = err.Error()
		} else {
			mr.Success = true
			for _, d := range ms.Days {
				if d.IsHoliday {
					mr.Holidays++
				}
			}
		}

		result.Months = append(result.Months, mr)
		result.ProcessedMonths++

		if key == to {
			break
		}
		if month == time.December {
			year, month = year+1, time.January
		} else {
			month++
		}
	}

	result.Duration = time.Since(started)

	m.logger.Info("Range generation complete",
		zap.Int("months", result.ProcessedMonths),
		zap.Duration("duration", result.Duration))

	return result, nil
}
