package calendar

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/username/clinic-scheduler/internal/schedule"
)

//go:embed data/holidays.json
var embeddedDataset []byte

// EmbeddedHolidays serves the public holiday dataset compiled into the binary
type EmbeddedHolidays struct {
	data Dataset
}

// NewEmbeddedHolidays parses the built-in dataset
func NewEmbeddedHolidays() (*EmbeddedHolidays, error) {
	ds, err := ParseDataset(embeddedDataset)
	if err != nil {
		return nil, fmt.Errorf("embedded dataset: %w", err)
	}
	return &EmbeddedHolidays{data: ds}, nil
}

// Holidays returns the holidays of a month
func (e *EmbeddedHolidays) Holidays(_ context.Context, year int, month time.Month) ([]schedule.PublicHoliday, error) {
	return e.data.month(year, month)
}

// Dataset exposes the parsed dataset for lookups
func (e *EmbeddedHolidays) Dataset() Dataset {
	return e.data
}
