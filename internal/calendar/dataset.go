package calendar

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/username/clinic-scheduler/internal/schedule"
	"github.com/username/clinic-scheduler/pkg/dateutil"
)

// Dataset holds public holidays keyed by year ("2025" -> holidays)
type Dataset map[string][]schedule.PublicHoliday

// ParseDataset decodes a JSON holiday dataset and checks every date
func ParseDataset(data []byte) (Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse holiday dataset: %w", err)
	}
	for year, holidays := range ds {
		if err := checkDates(holidays); err != nil {
			return nil, fmt.Errorf("%s: %w", year, err)
		}
	}
	return ds, nil
}

func checkDates(holidays []schedule.PublicHoliday) error {
	for _, h := range holidays {
		if _, err := time.Parse(dateutil.ISODate, h.Date); err != nil {
			return fmt.Errorf("holiday %q: %w", h.Name, err)
		}
	}
	return nil
}

// Covers reports whether the dataset has an entry for the year
func (ds Dataset) Covers(year int) bool {
	_, ok := ds[strconv.Itoa(year)]
	return ok
}

// HolidaysForMonth returns the holidays of a month ordered by date
func (ds Dataset) HolidaysForMonth(year int, month time.Month) []schedule.PublicHoliday {
	prefix := dateutil.MonthKey(year, month) + "-"
	result := []schedule.PublicHoliday{}
	for _, h := range ds[strconv.Itoa(year)] {
		if strings.HasPrefix(h.Date, prefix) {
			result = append(result, h)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result
}

// HolidayOn returns the holiday that falls on the date, if any
func (ds Dataset) HolidayOn(date time.Time) (schedule.PublicHoliday, bool) {
	key := dateutil.FormatDate(date)
	for _, h := range ds[strconv.Itoa(date.Year())] {
		if h.Date == key {
			return h, true
		}
	}
	return schedule.PublicHoliday{}, false
}

func (ds Dataset) month(year int, month time.Month) ([]schedule.PublicHoliday, error) {
	if !ds.Covers(year) {
		return nil, fmt.Errorf("%w: %d", ErrYearNotCovered, year)
	}
	return ds.HolidaysForMonth(year, month), nil
}
